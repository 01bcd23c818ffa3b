package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// BankProfileRepository define el contrato de persistencia para la tabla users1.
type BankProfileRepository interface {
	Create(ctx context.Context, profile domain.BankProfile) error
	List(ctx context.Context) ([]domain.BankProfile, error)
	Delete(ctx context.Context, id string) error
}

// PgBankProfileRepository implementa BankProfileRepository usando pgxpool.
type PgBankProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgBankProfileRepository(pool *pgxpool.Pool) *PgBankProfileRepository {
	return &PgBankProfileRepository{pool: pool}
}

func (r *PgBankProfileRepository) Create(ctx context.Context, profile domain.BankProfile) error {
	const query = `
		INSERT INTO users1 (id, first_name, last_name, email, phone, address, pincode, account_number, ifsc_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.Phone,
		profile.Address,
		profile.Pincode,
		profile.AccountNumber,
		profile.IFSCCode,
		profile.CreatedAt,
	)
	return err
}

func (r *PgBankProfileRepository) List(ctx context.Context) ([]domain.BankProfile, error) {
	const query = `
		SELECT id, first_name, last_name, email, phone, address, pincode, account_number, ifsc_code, created_at
		FROM users1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]domain.BankProfile, 0)
	for rows.Next() {
		var p domain.BankProfile
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.Pincode, &p.AccountNumber, &p.IFSCCode, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *PgBankProfileRepository) Delete(ctx context.Context, id string) error {
	const query = `
		DELETE FROM users1 WHERE id = $1
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
