package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// SaveCustomizationRequest payload for saving a product customization.
type SaveCustomizationRequest struct {
	ProductID    string             `json:"product_id" validate:"required"`
	BusinessName string             `json:"business_name" validate:"required"`
	PhoneNumber  string             `json:"phone_number" validate:"required"`
	LogoURL      *string            `json:"logo_url"`
	LogoPosition map[string]float64 `json:"logo_position"`
}

// CustomizationView is the external customization representation; storage
// internals stay out of it.
type CustomizationView struct {
	ID           string             `json:"id"`
	UserEmail    string             `json:"user_email"`
	ProductID    string             `json:"product_id"`
	BusinessName string             `json:"business_name"`
	PhoneNumber  string             `json:"phone_number"`
	LogoURL      *string            `json:"logo_url"`
	LogoPosition map[string]float64 `json:"logo_position"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewCustomizationView projects a domain customization.
func NewCustomizationView(c *domain.Customization) CustomizationView {
	return CustomizationView{
		ID:           c.ID,
		UserEmail:    c.UserEmail,
		ProductID:    c.ProductID,
		BusinessName: c.BusinessName,
		PhoneNumber:  c.PhoneNumber,
		LogoURL:      c.LogoURL,
		LogoPosition: c.LogoPosition,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
