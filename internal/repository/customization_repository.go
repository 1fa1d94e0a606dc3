package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CustomizationRepository persists saved product customizations.
type CustomizationRepository interface {
	Create(ctx context.Context, customization *domain.Customization) error
	ListByEmail(ctx context.Context, email string) ([]domain.Customization, error)
}

type customizationRepository struct {
	pool *pgxpool.Pool
}

// NewCustomizationRepository returns a Postgres-backed implementation.
func NewCustomizationRepository(pool *pgxpool.Pool) CustomizationRepository {
	return &customizationRepository{pool: pool}
}

func (r *customizationRepository) Create(ctx context.Context, customization *domain.Customization) error {
	const query = `
        INSERT INTO customizations (id, user_email, product_id, business_name, phone_number, logo_url, logo_position)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		customization.ID,
		customization.UserEmail,
		customization.ProductID,
		customization.BusinessName,
		customization.PhoneNumber,
		customization.LogoURL,
		customization.LogoPosition,
	).Scan(&customization.CreatedAt, &customization.UpdatedAt)
}

func (r *customizationRepository) ListByEmail(ctx context.Context, email string) ([]domain.Customization, error) {
	const query = `
        SELECT id, user_email, product_id, business_name, phone_number, logo_url, logo_position, created_at, updated_at
        FROM customizations WHERE user_email=$1`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customization
	for rows.Next() {
		var customization domain.Customization
		if err := rows.Scan(
			&customization.ID,
			&customization.UserEmail,
			&customization.ProductID,
			&customization.BusinessName,
			&customization.PhoneNumber,
			&customization.LogoURL,
			&customization.LogoPosition,
			&customization.CreatedAt,
			&customization.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, customization)
	}
	return result, rows.Err()
}
