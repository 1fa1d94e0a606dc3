package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// QuoteRepository persists quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	ListByEmail(ctx context.Context, email string) ([]domain.Quote, error)
}

type quoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository returns a Postgres-backed implementation.
func NewQuoteRepository(pool *pgxpool.Pool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	const query = `
        INSERT INTO quotes (id, user_email, business_name, product_name, customization_data, quantity, message, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		quote.ID,
		quote.UserEmail,
		quote.BusinessName,
		quote.ProductName,
		quote.CustomizationData,
		quote.Quantity,
		quote.Message,
		quote.Status,
	).Scan(&quote.CreatedAt)
}

func (r *quoteRepository) ListByEmail(ctx context.Context, email string) ([]domain.Quote, error) {
	const query = `
        SELECT id, user_email, business_name, product_name, customization_data, quantity, message, status, created_at
        FROM quotes WHERE user_email=$1`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		if err := rows.Scan(
			&quote.ID,
			&quote.UserEmail,
			&quote.BusinessName,
			&quote.ProductName,
			&quote.CustomizationData,
			&quote.Quantity,
			&quote.Message,
			&quote.Status,
			&quote.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, quote)
	}
	return result, rows.Err()
}
