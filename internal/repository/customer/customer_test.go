package customer

import (
	"context"
	"errors"
	"os"
	"testing"

	"roastery-admin/internal/domain"
	"roastery-admin/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Customer{
		Name:  "Asha Rao",
		Email: " Asha@Example.com ",
		Phone: " 9999900000 ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "asha@example.com" {
		t.Fatalf("email not normalized on insert: %q", created.Email)
	}
	if created.TotalOrders != 0 || created.TotalSpentCents != 0 {
		t.Fatalf("expected zero counters, got %+v", created)
	}

	byEmail, err := repo.GetByEmail(ctx, "ASHA@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("lookup returned wrong customer")
	}

	byPhone, err := repo.GetByPhone(ctx, " 9999900000")
	if err != nil {
		t.Fatalf("get by phone: %v", err)
	}
	if byPhone.ID != created.ID {
		t.Fatalf("phone lookup returned wrong customer")
	}

	if _, err := repo.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	if _, err := repo.Create(ctx, domain.Customer{Email: "dup@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := repo.Create(ctx, domain.Customer{Email: "dup@example.com"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPostgres_AddressRoundTripAndIncrement(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Customer{Email: "addr@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	addrs := []domain.Address{{
		ID:         "addr-1",
		Street:     "12 Brew Lane",
		City:       "Bengaluru",
		State:      "KA",
		PostalCode: "560001",
		Country:    "IN",
		IsDefault:  true,
	}}
	if err := repo.UpdateAddresses(ctx, created.ID, addrs); err != nil {
		t.Fatalf("update addresses: %v", err)
	}

	if err := repo.IncrementStats(ctx, created.ID, 85000); err != nil {
		t.Fatalf("increment stats: %v", err)
	}
	if err := repo.IncrementStats(ctx, created.ID, 45900); err != nil {
		t.Fatalf("increment stats: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if len(got.Addresses) != 1 || got.Addresses[0].Street != "12 Brew Lane" || !got.Addresses[0].IsDefault {
		t.Fatalf("addresses did not round-trip: %+v", got.Addresses)
	}
	if got.TotalOrders != 2 || got.TotalSpentCents != 130900 {
		t.Fatalf("unexpected aggregates: orders=%d spent=%d", got.TotalOrders, got.TotalSpentCents)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE webhook_events, admins, orders, products, customers RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
