package dashboard

import (
	"context"
	"io"
	"log"

	"roastery-admin/internal/domain"
)

type orderReader interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type customerReader interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

type productReader interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
}

// Service aggregates the three collections for the dashboard.
type Service struct {
	orders    orderReader
	customers customerReader
	products  productReader
	logger    *log.Logger
}

// New creates a dashboard Service.
func New(orders orderReader, customers customerReader, products productReader, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, customers: customers, products: products, logger: logger}
}

// Snapshot is the dashboard refresh payload. Products are active-only.
type Snapshot struct {
	Orders    []domain.Order    `json:"orders"`
	Customers []domain.Customer `json:"customers"`
	Products  []domain.Product  `json:"products"`
}

// Refresh reads all three collections. A failing collection degrades to
// an empty list so the dashboard still renders.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	snap := Snapshot{
		Orders:    []domain.Order{},
		Customers: []domain.Customer{},
		Products:  []domain.Product{},
	}

	if orders, err := s.orders.List(ctx); err != nil {
		s.logger.Printf("dashboard: list orders err=%v", err)
	} else if orders != nil {
		snap.Orders = orders
	}

	if customers, err := s.customers.List(ctx); err != nil {
		s.logger.Printf("dashboard: list customers err=%v", err)
	} else if customers != nil {
		snap.Customers = customers
	}

	if products, err := s.products.ListActive(ctx); err != nil {
		s.logger.Printf("dashboard: list products err=%v", err)
	} else if products != nil {
		snap.Products = products
	}

	return snap
}
