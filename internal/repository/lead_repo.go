package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// LeadRepository define el contrato de persistencia para la tabla users2.
type LeadRepository interface {
	Create(ctx context.Context, lead domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// PgLeadRepository implementa LeadRepository usando pgxpool.
type PgLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

func (r *PgLeadRepository) Create(ctx context.Context, lead domain.Lead) error {
	const query = `
		INSERT INTO users2 (id, email_or_mobile, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, lead.ID, lead.EmailOrMobile, lead.CreatedAt)
	return err
}

func (r *PgLeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	const query = `
		SELECT id, email_or_mobile, created_at
		FROM users2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.EmailOrMobile, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *PgLeadRepository) Delete(ctx context.Context, id string) error {
	const query = `
		DELETE FROM users2 WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
