package email

import (
	"context"
	"errors"
	"testing"

	"roastery-admin/internal/domain"
)

type stubOrderWriter struct {
	recorded []domain.OrderStatus
	err      error
}

func (s *stubOrderWriter) SetLastNotifiedStatus(_ context.Context, _ string, status domain.OrderStatus) error {
	if s.err != nil {
		return s.err
	}
	s.recorded = append(s.recorded, status)
	return nil
}

type stubCustomerReader struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerReader) GetByID(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubSender struct {
	sent []Message
	to   []string
	err  error
}

func (s *stubSender) Send(_ context.Context, to string, msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.to = append(s.to, to)
	s.sent = append(s.sent, msg)
	return nil
}

func shippedOrder() *domain.Order {
	return &domain.Order{
		ID:          "order-1",
		OrderNumber: "ORD-1-AAAAAA",
		CustomerID:  "cust-1",
		Status:      domain.StatusShipped,
		TrackingID:  "TRK-9",
	}
}

func TestOrderStatusChanged_SendsAndRecords(t *testing.T) {
	orders := &stubOrderWriter{}
	sender := &stubSender{}
	n := NewNotifier(orders, &stubCustomerReader{customer: &domain.Customer{ID: "cust-1", Name: "Asha", Email: "asha@example.com"}}, sender, nil)

	n.OrderStatusChanged(context.Background(), shippedOrder())

	if len(sender.sent) != 1 || sender.to[0] != "asha@example.com" {
		t.Fatalf("expected one email to customer, got %+v", sender.to)
	}
	if len(orders.recorded) != 1 || orders.recorded[0] != domain.StatusShipped {
		t.Fatalf("notified status not recorded: %+v", orders.recorded)
	}
}

func TestOrderStatusChanged_SkipsAlreadyNotified(t *testing.T) {
	sender := &stubSender{}
	n := NewNotifier(&stubOrderWriter{}, &stubCustomerReader{customer: &domain.Customer{ID: "cust-1", Email: "a@b.c"}}, sender, nil)

	o := shippedOrder()
	o.LastNotifiedStatus = domain.StatusShipped
	n.OrderStatusChanged(context.Background(), o)

	if len(sender.sent) != 0 {
		t.Fatalf("duplicate notification sent")
	}
}

func TestOrderStatusChanged_SkipsNonNotifyingStatus(t *testing.T) {
	sender := &stubSender{}
	n := NewNotifier(&stubOrderWriter{}, &stubCustomerReader{customer: &domain.Customer{ID: "cust-1", Email: "a@b.c"}}, sender, nil)

	o := shippedOrder()
	o.Status = domain.StatusAccepted
	n.OrderStatusChanged(context.Background(), o)

	if len(sender.sent) != 0 {
		t.Fatalf("no email expected for ACCEPTED")
	}
}

func TestOrderStatusChanged_SendFailureNotRecorded(t *testing.T) {
	orders := &stubOrderWriter{}
	n := NewNotifier(orders, &stubCustomerReader{customer: &domain.Customer{ID: "cust-1", Email: "a@b.c"}}, &stubSender{err: errors.New("smtp down")}, nil)

	n.OrderStatusChanged(context.Background(), shippedOrder())

	if len(orders.recorded) != 0 {
		t.Fatalf("failed send must not be recorded as notified")
	}
}

func TestOrderStatusChanged_NoCustomerEmail(t *testing.T) {
	sender := &stubSender{}
	n := NewNotifier(&stubOrderWriter{}, &stubCustomerReader{customer: &domain.Customer{ID: "cust-1"}}, sender, nil)

	n.OrderStatusChanged(context.Background(), shippedOrder())

	if len(sender.sent) != 0 {
		t.Fatalf("no email expected without an address")
	}
}
