package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cache"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// QuoteService records quote requests and lists them for a requester.
// Submission is open to unauthenticated callers; listing is gated by the
// bearer token and filters on its subject.
type QuoteService struct {
	quotes   repository.QuoteRepository
	listings *cache.ListingCache
	logger   *zap.Logger
}

// NewQuoteService builds the service.
func NewQuoteService(quotes repository.QuoteRepository, listings *cache.ListingCache, logger *zap.Logger) *QuoteService {
	return &QuoteService{quotes: quotes, listings: listings, logger: logger}
}

// QuoteInput carries a quote request as submitted.
type QuoteInput struct {
	UserEmail         string
	BusinessName      string
	ProductName       string
	CustomizationData map[string]any
	Quantity          int
	Message           *string
}

// Submit records a quote request with status pending.
func (s *QuoteService) Submit(ctx context.Context, input QuoteInput) (*domain.Quote, error) {
	quote := &domain.Quote{
		ID:                uuid.NewString(),
		UserEmail:         input.UserEmail,
		BusinessName:      input.BusinessName,
		ProductName:       input.ProductName,
		CustomizationData: input.CustomizationData,
		Quantity:          input.Quantity,
		Message:           input.Message,
		Status:            domain.QuoteStatusPending,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.InvalidateQuotes(ctx, input.UserEmail)
	s.logger.Info("quote submitted",
		zap.String("quote_id", quote.ID),
		zap.String("product", quote.ProductName),
		zap.Int("quantity", quote.Quantity),
	)
	return quote, nil
}

// ListForRequester returns quotes matching the requester email, served from
// the listing cache when warm.
func (s *QuoteService) ListForRequester(ctx context.Context, email string) ([]domain.Quote, error) {
	var cached []domain.Quote
	if s.listings.GetQuotes(ctx, email, &cached) {
		return cached, nil
	}

	quotes, err := s.quotes.ListByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.SetQuotes(ctx, email, quotes)
	return quotes, nil
}
