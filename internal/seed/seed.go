package seed

import (
	"context"
	"errors"
	"fmt"

	"roastery-admin/internal/domain"
	adminrepo "roastery-admin/internal/repository/admin"
	productrepo "roastery-admin/internal/repository/product"

	"golang.org/x/crypto/bcrypt"
)

// Catalog returns the roaster's starter catalog.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			Name:           "House Blend",
			Category:       domain.CategoryCoffeeBeans,
			RoastLevel:     domain.RoastMedium,
			WeightVariants: []int{250, 500, 1000},
			Prices:         map[int]int64{250: 42500, 500: 79900, 1000: 149900},
			IsActive:       true,
			StockQty:       120,
			TastingNotes:   "Chocolate, hazelnut, brown sugar",
			Origin:         "Chikmagalur",
		},
		{
			Name:           "Monsoon Malabar",
			Category:       domain.CategoryCoffeeBeans,
			RoastLevel:     domain.RoastDark,
			WeightVariants: []int{250, 500},
			Prices:         map[int]int64{250: 49900, 500: 94900},
			IsActive:       true,
			StockQty:       60,
			TastingNotes:   "Earthy, spice, low acidity",
			Origin:         "Malabar Coast",
		},
		{
			Name:           "Attikan Estate",
			Category:       domain.CategoryFilterCoffee,
			RoastLevel:     domain.RoastLightMedium,
			WeightVariants: []int{250, 500},
			Prices:         map[int]int64{250: 45900, 500: 86900},
			IsActive:       true,
			StockQty:       80,
			TastingNotes:   "Citrus, caramel, clean finish",
			Origin:         "Biligiriranga Hills",
		},
		{
			Name:           "Everyday Instant",
			Category:       domain.CategoryInstantCoffee,
			RoastLevel:     domain.RoastMediumDark,
			WeightVariants: []int{100, 200},
			Prices:         map[int]int64{100: 29900, 200: 54900},
			IsActive:       true,
			StockQty:       200,
		},
		{
			Name:           "Nilgiri Black",
			Category:       domain.CategoryTea,
			WeightVariants: []int{100, 250},
			Prices:         map[int]int64{100: 24900, 250: 49900},
			IsActive:       true,
			StockQty:       150,
			Origin:         "Nilgiris",
		},
	}
}

// Apply inserts seed data for manual testing. Idempotent: products
// upsert on (name, category) and the bootstrap admin is kept if present.
func Apply(ctx context.Context, products productrepo.Repository, admins adminrepo.Repository) error {
	for _, p := range Catalog() {
		if _, err := products.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureAdmin(ctx, admins); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func ensureAdmin(ctx context.Context, admins adminrepo.Repository) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = admins.Create(ctx, domain.Admin{
		Name:         "Bootstrap Admin",
		Email:        "admin@roastery.example",
		PasswordHash: string(hashed),
		Role:         "owner",
		CreatedBy:    "seed",
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil
	}
	return err
}
