package domain

import "time"

// Customization is a user's saved product personalization. The owner is
// referenced by email; the product id is stored as submitted without a
// catalog existence check.
type Customization struct {
	ID           string
	UserEmail    string
	ProductID    string
	BusinessName string
	PhoneNumber  string
	LogoURL      *string
	LogoPosition map[string]float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
