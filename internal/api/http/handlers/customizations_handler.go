package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CustomizationsHandler manages saved product customizations.
type CustomizationsHandler struct {
	service *service.CustomizationService
}

// NewCustomizationsHandler constructs handler.
func NewCustomizationsHandler(customizationService *service.CustomizationService) *CustomizationsHandler {
	return &CustomizationsHandler{service: customizationService}
}

// Save handles POST /api/customizations.
func (h *CustomizationsHandler) Save(c *fiber.Ctx) error {
	email, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewMissingSubject()
	}

	var req dto.SaveCustomizationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fields := apperrors.ValidateStruct(req); fields != nil {
		return apperrors.NewValidationError("validation failed", toDetails(fields))
	}

	customization, err := h.service.Save(c.Context(), email, service.CustomizationInput{
		ProductID:    req.ProductID,
		BusinessName: req.BusinessName,
		PhoneNumber:  req.PhoneNumber,
		LogoURL:      req.LogoURL,
		LogoPosition: req.LogoPosition,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":      customization.ID,
		"message": "Customization saved successfully",
	})
}

// List handles GET /api/customizations.
func (h *CustomizationsHandler) List(c *fiber.Ctx) error {
	email, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewMissingSubject()
	}

	customizations, err := h.service.ListForOwner(c.Context(), email)
	if err != nil {
		return err
	}

	items := make([]dto.CustomizationView, 0, len(customizations))
	for i := range customizations {
		items = append(items, dto.NewCustomizationView(&customizations[i]))
	}
	return c.JSON(fiber.Map{"customizations": items})
}
