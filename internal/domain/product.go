package domain

import "time"

// ProductCategory enumerates the catalog groups sold by the roastery.
type ProductCategory string

const (
	CategoryCoffeeBeans   ProductCategory = "COFFEE_BEANS"
	CategoryFilterCoffee  ProductCategory = "FILTER_COFFEE"
	CategoryInstantCoffee ProductCategory = "INSTANT_COFFEE"
	CategoryTea           ProductCategory = "TEA"
)

// RoastLevel enumerates roast profiles.
type RoastLevel string

const (
	RoastLight       RoastLevel = "LIGHT"
	RoastLightMedium RoastLevel = "LIGHT_MEDIUM"
	RoastMedium      RoastLevel = "MEDIUM"
	RoastMediumDark  RoastLevel = "MEDIUM_DARK"
	RoastDark        RoastLevel = "DARK"
)

// Product is a catalog entry. Prices maps a gram variant to its unit
// price in cents; WeightVariants lists the gram options offered.
// Products are never deleted, only deactivated.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       ProductCategory `json:"category"`
	RoastLevel     RoastLevel      `json:"roastLevel,omitempty"`
	WeightVariants []int           `json:"weightVariants"`
	Prices         map[int]int64   `json:"prices"`
	IsActive       bool            `json:"isActive"`
	StockQty       int             `json:"stockQty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	TastingNotes   string          `json:"tastingNotes,omitempty"`
	Origin         string          `json:"origin,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
