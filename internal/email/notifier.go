package email

import (
	"context"
	"io"
	"log"

	"roastery-admin/internal/domain"
)

// Sender delivers a rendered message to a recipient.
type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// LogSender writes messages to the log instead of a mail provider.
// Used in development and as the default wiring.
type LogSender struct {
	Logger *log.Logger
	From   string
}

func (s LogSender) Send(_ context.Context, to string, msg Message) error {
	if s.Logger != nil {
		s.Logger.Printf("email: from=%s to=%s subject=%q", s.From, to, msg.Subject)
	}
	return nil
}

type orderWriter interface {
	SetLastNotifiedStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type customerReader interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Notifier sends at most one email per order status: it compares the
// new status with the status an email was last sent for and records
// what it notified.
type Notifier struct {
	orders    orderWriter
	customers customerReader
	sender    Sender
	logger    *log.Logger
}

// NewNotifier builds a Notifier.
func NewNotifier(orders orderWriter, customers customerReader, sender Sender, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Notifier{orders: orders, customers: customers, sender: sender, logger: logger}
}

// OrderStatusChanged sends the notification matching the order's
// current status, if one exists and was not already sent. Failures are
// logged and swallowed; notification must never fail the transition.
func (n *Notifier) OrderStatusChanged(ctx context.Context, o *domain.Order) {
	build, ok := ForStatus(o.Status)
	if !ok || o.Status == o.LastNotifiedStatus {
		return
	}

	cust, err := n.customers.GetByID(ctx, o.CustomerID)
	if err != nil {
		n.logger.Printf("notifier: load customer order=%s err=%v", o.ID, err)
		return
	}
	if cust.Email == "" {
		return
	}

	msg, err := build(OrderEmailData{
		CustomerName: cust.Name,
		OrderNumber:  o.OrderNumber,
		TrackingID:   o.TrackingID,
		TotalCents:   o.TotalCents,
		Currency:     o.Currency,
	})
	if err != nil {
		n.logger.Printf("notifier: render order=%s status=%s err=%v", o.ID, o.Status, err)
		return
	}
	if err := n.sender.Send(ctx, cust.Email, msg); err != nil {
		n.logger.Printf("notifier: send order=%s status=%s err=%v", o.ID, o.Status, err)
		return
	}
	if err := n.orders.SetLastNotifiedStatus(ctx, o.ID, o.Status); err != nil {
		n.logger.Printf("notifier: record notified status order=%s err=%v", o.ID, err)
	}
}
