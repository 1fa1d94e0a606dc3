package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/storage"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// UploadsHandler accepts logo asset uploads.
type UploadsHandler struct {
	store *storage.UploadStore
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(store *storage.UploadStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Upload handles POST /api/upload. Expects a multipart form with a "file"
// part; the extension allow-list is enforced by the store.
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer src.Close()

	asset, err := h.store.Store(fileHeader.Filename, src)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUploadResponse(asset))
}
