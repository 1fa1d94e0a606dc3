package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// QuotesHandler manages quote requests.
type QuotesHandler struct {
	service *service.QuoteService
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(quoteService *service.QuoteService) *QuotesHandler {
	return &QuotesHandler{service: quoteService}
}

// Submit handles POST /api/quotes. No bearer token required; the requester
// email travels in the body.
func (h *QuotesHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fields := apperrors.ValidateStruct(req); fields != nil {
		return apperrors.NewValidationError("validation failed", toDetails(fields))
	}

	quote, err := h.service.Submit(c.Context(), service.QuoteInput{
		UserEmail:         req.UserEmail,
		BusinessName:      req.BusinessName,
		ProductName:       req.ProductName,
		CustomizationData: req.CustomizationData,
		Quantity:          req.Quantity,
		Message:           req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":      quote.ID,
		"message": "Quote request submitted successfully. We'll contact you within 24 hours.",
	})
}

// List handles GET /api/quotes, filtered by the token subject.
func (h *QuotesHandler) List(c *fiber.Ctx) error {
	email, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewMissingSubject()
	}

	quotes, err := h.service.ListForRequester(c.Context(), email)
	if err != nil {
		return err
	}

	items := make([]dto.QuoteView, 0, len(quotes))
	for i := range quotes {
		items = append(items, dto.NewQuoteView(&quotes[i]))
	}
	return c.JSON(fiber.Map{"quotes": items})
}
