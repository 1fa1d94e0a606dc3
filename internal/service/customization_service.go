package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/cache"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CustomizationService saves and lists product customizations for the
// authenticated owner.
type CustomizationService struct {
	customizations repository.CustomizationRepository
	listings       *cache.ListingCache
}

// NewCustomizationService builds the service.
func NewCustomizationService(customizations repository.CustomizationRepository, listings *cache.ListingCache) *CustomizationService {
	return &CustomizationService{customizations: customizations, listings: listings}
}

// CustomizationInput carries a customization as submitted. The product id is
// stored as-is without a catalog existence check.
type CustomizationInput struct {
	ProductID    string
	BusinessName string
	PhoneNumber  string
	LogoURL      *string
	LogoPosition map[string]float64
}

// Save creates a customization owned by the given email.
func (s *CustomizationService) Save(ctx context.Context, ownerEmail string, input CustomizationInput) (*domain.Customization, error) {
	customization := &domain.Customization{
		ID:           uuid.NewString(),
		UserEmail:    ownerEmail,
		ProductID:    input.ProductID,
		BusinessName: input.BusinessName,
		PhoneNumber:  input.PhoneNumber,
		LogoURL:      input.LogoURL,
		LogoPosition: input.LogoPosition,
	}
	if err := s.customizations.Create(ctx, customization); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.InvalidateCustomizations(ctx, ownerEmail)
	return customization, nil
}

// ListForOwner returns all customizations owned by the email, served from
// the listing cache when warm.
func (s *CustomizationService) ListForOwner(ctx context.Context, ownerEmail string) ([]domain.Customization, error) {
	var cached []domain.Customization
	if s.listings.GetCustomizations(ctx, ownerEmail, &cached) {
		return cached, nil
	}

	customizations, err := s.customizations.ListByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.SetCustomizations(ctx, ownerEmail, customizations)
	return customizations, nil
}
