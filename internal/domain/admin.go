package domain

import "time"

// Admin is a back-office account. The row doubles as the auth identity;
// PasswordHash is never serialized.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Department   string    `json:"department,omitempty"`
	PhotoURL     string    `json:"photoURL,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
