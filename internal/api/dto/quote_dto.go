package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// SubmitQuoteRequest payload for quote submission. This boundary is open to
// unauthenticated callers, so the requester email travels in the body and is
// accepted as an opaque string.
type SubmitQuoteRequest struct {
	UserEmail         string         `json:"user_email" validate:"required"`
	BusinessName      string         `json:"business_name" validate:"required"`
	ProductName       string         `json:"product_name" validate:"required"`
	CustomizationData map[string]any `json:"customization_data"`
	Quantity          int            `json:"quantity" validate:"required,gt=0"`
	Message           *string        `json:"message"`
}

// QuoteView is the external quote representation.
type QuoteView struct {
	ID                string         `json:"id"`
	UserEmail         string         `json:"user_email"`
	BusinessName      string         `json:"business_name"`
	ProductName       string         `json:"product_name"`
	CustomizationData map[string]any `json:"customization_data"`
	Quantity          int            `json:"quantity"`
	Message           *string        `json:"message"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
}

// NewQuoteView projects a domain quote.
func NewQuoteView(q *domain.Quote) QuoteView {
	return QuoteView{
		ID:                q.ID,
		UserEmail:         q.UserEmail,
		BusinessName:      q.BusinessName,
		ProductName:       q.ProductName,
		CustomizationData: q.CustomizationData,
		Quantity:          q.Quantity,
		Message:           q.Message,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
	}
}
