package order

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"roastery-admin/internal/domain"
	"roastery-admin/internal/service/reconcile"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingID string) error
	MarkStatsRepair(ctx context.Context, id string) error
}

type statsRepo interface {
	IncrementStats(ctx context.Context, id string, amountCents int64) error
}

type reconciler interface {
	Reconcile(ctx context.Context, in reconcile.Input) (*reconcile.Result, error)
}

type notifier interface {
	OrderStatusChanged(ctx context.Context, o *domain.Order)
}

// Revalidator signals external caches of listing views after a write.
type Revalidator func(view string)

// Service coordinates order intake and status transitions.
type Service struct {
	orders     orderRepo
	customers  statsRepo
	reconciler reconciler
	notifier   notifier
	revalidate Revalidator
	logger     *log.Logger
}

// New creates a Service. notifier and revalidate may be nil.
func New(orders orderRepo, customers statsRepo, rec reconciler, n notifier, revalidate Revalidator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		orders:     orders,
		customers:  customers,
		reconciler: rec,
		notifier:   n,
		revalidate: revalidate,
		logger:     logger,
	}
}

// ItemInput mirrors an incoming order line.
type ItemInput struct {
	ProductID     string                 `json:"productId"`
	ProductName   string                 `json:"productName"`
	Category      domain.ProductCategory `json:"category,omitempty"`
	RoastLevel    domain.RoastLevel      `json:"roastLevel,omitempty"`
	Grams         int                    `json:"grams"`
	Quantity      int                    `json:"quantity"`
	UnitCents     int64                  `json:"pricePerUnit"`
	SubtotalCents int64                  `json:"subtotal"`
}

// CreateInput is the order-creation payload.
type CreateInput struct {
	Customer   reconcile.Input `json:"customer"`
	Items      []ItemInput     `json:"items"`
	TotalCents int64           `json:"totalAmount"`
	Currency   string          `json:"currency,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"createdBy,omitempty"`
}

// CreateResult reports the persisted order and reconciliation outcome.
type CreateResult struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	CustomerID    string `json:"customerId"`
	AddressID     string `json:"addressId"`
	IsNewCustomer bool   `json:"isNewCustomer"`
	IsNewAddress  bool   `json:"isNewAddress"`
}

// Create reconciles the customer, persists the order in its initial
// state, then bumps the customer's aggregates. The order is already
// committed when the increment runs; an increment failure flags the
// order for stats repair instead of rolling anything back.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("items required")
	}
	if in.TotalCents <= 0 {
		return nil, errors.New("total amount must be positive")
	}

	rec, err := s.reconciler.Reconcile(ctx, in.Customer)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "INR"
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domain.OrderItem{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Category:      it.Category,
			RoastLevel:    it.RoastLevel,
			Grams:         it.Grams,
			Quantity:      it.Quantity,
			UnitCents:     it.UnitCents,
			SubtotalCents: it.SubtotalCents,
		})
	}

	saved, err := s.orders.Create(ctx, domain.Order{
		OrderNumber: NewOrderNumber(),
		CustomerID:  rec.CustomerID,
		AddressID:   rec.AddressID,
		Items:       items,
		TotalCents:  in.TotalCents,
		Currency:    currency,
		Status:      domain.StatusReceived,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	if err := s.customers.IncrementStats(ctx, rec.CustomerID, in.TotalCents); err != nil {
		s.logger.Printf("order service: stats increment customer=%s order=%s err=%v", rec.CustomerID, saved.ID, err)
		if repairErr := s.orders.MarkStatsRepair(ctx, saved.ID); repairErr != nil {
			s.logger.Printf("order service: mark stats repair order=%s err=%v", saved.ID, repairErr)
		}
	}

	if s.revalidate != nil {
		s.revalidate("orders")
	}

	return &CreateResult{
		OrderID:       saved.ID,
		OrderNumber:   saved.OrderNumber,
		CustomerID:    rec.CustomerID,
		AddressID:     rec.AddressID,
		IsNewCustomer: rec.IsNewCustomer,
		IsNewAddress:  rec.IsNewAddress,
	}, nil
}

// Get returns a single order.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus validates and persists a status transition, then hands
// the updated order to the notifier.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingID string) error {
	if status == "" {
		return errors.New("status required")
	}
	if !domain.IsValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}

	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, id, status, strings.TrimSpace(trackingID)); err != nil {
		return err
	}
	s.logger.Printf("order service: status order=%s %s -> %s", id, current.Status, status)

	if s.notifier != nil {
		updated := *current
		updated.Status = status
		if t := strings.TrimSpace(trackingID); t != "" {
			updated.TrackingID = t
		}
		s.notifier.OrderStatusChanged(ctx, &updated)
	}
	return nil
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber builds a display order number from the current epoch
// millis and a 6-character random base36 suffix. Not guaranteed unique;
// collisions are vanishingly unlikely and the row ID stays the real key.
func NewOrderNumber() string {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("ORD-%d-%06d", time.Now().UnixMilli(), time.Now().Nanosecond()%1000000)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
