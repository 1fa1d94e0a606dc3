package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/catalog"
)

// ProductsHandler serves the static catalog.
type ProductsHandler struct {
	catalog *catalog.Provider
}

// NewProductsHandler constructs handler.
func NewProductsHandler(provider *catalog.Provider) *ProductsHandler {
	return &ProductsHandler{catalog: provider}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.catalog.List()})
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}
