package domain

import (
	"strings"
	"time"
)

// Address is one entry in a customer's embedded address list.
type Address struct {
	ID         string    `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Label      string    `json:"label,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Matches reports whether two addresses describe the same location,
// comparing the five location fields trimmed and case-folded.
func (a Address) Matches(b Address) bool {
	fold := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fold(a.Street) == fold(b.Street) &&
		fold(a.City) == fold(b.City) &&
		fold(a.State) == fold(b.State) &&
		fold(a.PostalCode) == fold(b.PostalCode) &&
		fold(a.Country) == fold(b.Country)
}

// Customer carries contact identity, the embedded address list, and
// lifetime order aggregates.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Addresses       []Address `json:"addresses"`
	TotalOrders     int       `json:"totalOrders"`
	TotalSpentCents int64     `json:"totalSpentCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FindAddress returns the first address structurally matching addr.
func (c *Customer) FindAddress(addr Address) (Address, bool) {
	for _, existing := range c.Addresses {
		if existing.Matches(addr) {
			return existing, true
		}
	}
	return Address{}, false
}

// NormalizeEmail lowercases and trims an email for use as a dedup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone trims a phone number for use as a secondary dedup key.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
