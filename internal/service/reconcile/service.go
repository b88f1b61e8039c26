package reconcile

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"roastery-admin/internal/domain"

	"github.com/google/uuid"
)

type customerRepo interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	UpdateAddresses(ctx context.Context, id string, addresses []domain.Address) error
}

// Service matches inbound contact and address data to existing customer
// records, creating what is missing.
type Service struct {
	repo   customerRepo
	logger *log.Logger
}

// New creates a reconciliation Service.
func New(repo customerRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// AddressInput mirrors incoming address payloads.
type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Label      string `json:"label,omitempty"`
}

// Input carries the raw contact and address data from an order.
type Input struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Address AddressInput `json:"address"`
}

// Result identifies the resolved customer and address.
type Result struct {
	CustomerID    string
	AddressID     string
	IsNewCustomer bool
	IsNewAddress  bool
}

// Reconcile finds a customer by normalized email, then phone, creating
// one when neither matches, then resolves the submitted address within
// that customer's list, appending it when no structural match exists.
func (s *Service) Reconcile(ctx context.Context, in Input) (*Result, error) {
	email := domain.NormalizeEmail(in.Email)
	phone := domain.NormalizePhone(in.Phone)
	if email == "" && phone == "" {
		return nil, errors.New("email or phone required")
	}

	result := &Result{}
	cust, err := s.lookup(ctx, email, phone)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		var created bool
		cust, created, err = s.create(ctx, in.Name, email, phone)
		if err != nil {
			return nil, err
		}
		result.IsNewCustomer = created
		if created {
			s.logger.Printf("reconcile: created customer id=%s email=%s", cust.ID, email)
		}
	default:
		return nil, err
	}
	result.CustomerID = cust.ID

	submitted := domain.Address{
		Street:     strings.TrimSpace(in.Address.Street),
		City:       strings.TrimSpace(in.Address.City),
		State:      strings.TrimSpace(in.Address.State),
		PostalCode: strings.TrimSpace(in.Address.PostalCode),
		Country:    strings.TrimSpace(in.Address.Country),
		Label:      strings.TrimSpace(in.Address.Label),
	}

	if existing, ok := cust.FindAddress(submitted); ok {
		result.AddressID = existing.ID
		return result, nil
	}

	submitted.ID = uuid.NewString()
	submitted.IsDefault = len(cust.Addresses) == 0
	submitted.CreatedAt = time.Now().UTC()
	addresses := append(cust.Addresses, submitted)
	if err := s.repo.UpdateAddresses(ctx, cust.ID, addresses); err != nil {
		return nil, err
	}
	result.AddressID = submitted.ID
	result.IsNewAddress = true
	return result, nil
}

func (s *Service) lookup(ctx context.Context, email, phone string) (*domain.Customer, error) {
	if email != "" {
		cust, err := s.repo.GetByEmail(ctx, email)
		if err == nil {
			return cust, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if phone != "" {
		return s.repo.GetByPhone(ctx, phone)
	}
	return nil, domain.ErrNotFound
}

// create inserts a fresh customer document. A unique-violation means a
// concurrent request created the same identity first; the lookup is
// retried so both callers converge on one record.
func (s *Service) create(ctx context.Context, name, email, phone string) (*domain.Customer, bool, error) {
	cust, err := s.repo.Create(ctx, domain.Customer{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Phone:     phone,
		Addresses: []domain.Address{},
	})
	if err == nil {
		return cust, true, nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.logger.Printf("reconcile: lost create race email=%s, retrying lookup", email)
		cust, err = s.lookup(ctx, email, phone)
		return cust, false, err
	}
	return nil, false, err
}
