package domain

import "time"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "RECEIVED"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusPacked    OrderStatus = "PACKED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// nextStatus holds the single legal forward step for each state.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusReceived: StatusAccepted,
	StatusAccepted: StatusPacked,
	StatusPacked:   StatusShipped,
	StatusShipped:  StatusDelivered,
}

// IsValidStatus reports whether s names a known lifecycle state.
func IsValidStatus(s OrderStatus) bool {
	switch s {
	case StatusReceived, StatusAccepted, StatusPacked, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from s to target.
// The happy path is strictly linear; cancellation is allowed from any
// non-terminal state.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return nextStatus[s] == target
}

// OrderItem is a line embedded in an order. Product fields are copied
// at order time so history survives later catalog edits.
type OrderItem struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Category      ProductCategory `json:"category,omitempty"`
	RoastLevel    RoastLevel      `json:"roastLevel,omitempty"`
	Grams         int             `json:"grams"`
	Quantity      int             `json:"quantity"`
	UnitCents     int64           `json:"unitCents"`
	SubtotalCents int64           `json:"subtotalCents"`
}

// Order references a customer and one of that customer's addresses and
// owns its embedded item list.
type Order struct {
	ID                 string      `json:"id"`
	OrderNumber        string      `json:"orderNumber"`
	CustomerID         string      `json:"customerId"`
	AddressID          string      `json:"addressId"`
	Items              []OrderItem `json:"items"`
	TotalCents         int64       `json:"totalCents"`
	Currency           string      `json:"currency"`
	Status             OrderStatus `json:"status"`
	TrackingID         string      `json:"trackingId,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	LastNotifiedStatus OrderStatus `json:"lastNotifiedStatus,omitempty"`
	NeedsStatsRepair   bool        `json:"needsStatsRepair,omitempty"`
	CreatedBy          string      `json:"createdBy,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}
