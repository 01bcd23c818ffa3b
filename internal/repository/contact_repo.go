package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// ContactRepository define el contrato de persistencia para mensajes de contacto.
type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// PgContactRepository implementa ContactRepository usando pgxpool.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

func (r *PgContactRepository) Create(ctx context.Context, contact domain.Contact) error {
	const query = `
		INSERT INTO contacts (id, first_name, last_name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Message,
		contact.CreatedAt,
	)
	return err
}

func (r *PgContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const query = `
		SELECT id, first_name, last_name, email, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	const query = `
		DELETE FROM contacts WHERE id = $1
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
