package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// SubscriberRepository define el contrato de persistencia para suscriptores.
type SubscriberRepository interface {
	Create(ctx context.Context, sub domain.Subscriber) error
	List(ctx context.Context) ([]domain.Subscriber, error)
	Delete(ctx context.Context, id string) error
}

// IsUniqueViolation reporta si err es una violación de unicidad de Postgres.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PgSubscriberRepository implementa SubscriberRepository usando pgxpool.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

func (r *PgSubscriberRepository) Create(ctx context.Context, sub domain.Subscriber) error {
	const query = `
		INSERT INTO subscribers (id, email, subscribed_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, sub.ID, sub.Email, sub.SubscribedAt)
	return err
}

func (r *PgSubscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	const query = `
		SELECT id, email, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]domain.Subscriber, 0)
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *PgSubscriberRepository) Delete(ctx context.Context, id string) error {
	const query = `
		DELETE FROM subscribers WHERE id = $1
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
