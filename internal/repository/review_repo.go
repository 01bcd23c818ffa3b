package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// ReviewRepository define el contrato de persistencia para reseñas.
type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
}

// PgReviewRepository implementa ReviewRepository usando pgxpool.
type PgReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

func (r *PgReviewRepository) Create(ctx context.Context, review domain.Review) error {
	const query = `
		INSERT INTO reviews (id, name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.Name,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	return err
}

func (r *PgReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	const query = `
		SELECT id, name, rating, comment, created_at
		FROM reviews
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
