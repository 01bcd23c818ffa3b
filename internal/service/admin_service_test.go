package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/domain"
)

type mockAdminRepo struct {
	adminsByEmail map[string]domain.Admin
	failWith      error
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{adminsByEmail: make(map[string]domain.Admin)}
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	if m.failWith != nil {
		return domain.Admin{}, m.failWith
	}
	admin, ok := m.adminsByEmail[email]
	if !ok {
		return domain.Admin{}, pgx.ErrNoRows
	}
	return admin, nil
}

func (m *mockAdminRepo) List(_ context.Context) ([]domain.Admin, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	admins := make([]domain.Admin, 0, len(m.adminsByEmail))
	for _, a := range m.adminsByEmail {
		admins = append(admins, a)
	}
	return admins, nil
}

func (m *mockAdminRepo) Delete(_ context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for email, a := range m.adminsByEmail {
		if a.ID == id {
			delete(m.adminsByEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func seedAdmin(t *testing.T, repo *mockAdminRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	repo.adminsByEmail[email] = domain.Admin{ID: "admin-1", Email: email, PasswordHash: string(hash)}
}

func TestAdminServiceAuthenticate(t *testing.T) {
	repo := newMockAdminRepo()
	seedAdmin(t, repo, "admin@x.com", "adminpass")
	svc := NewAdminService(zap.NewNop(), repo)

	ok, err := svc.Authenticate(context.Background(), "admin@x.com", "adminpass")
	if err != nil || !ok {
		t.Fatalf("expected success, got %v,%v", ok, err)
	}

	ok, err = svc.Authenticate(context.Background(), "admin@x.com", "wrong")
	if err != nil || ok {
		t.Fatalf("expected wrong password rejected without error, got %v,%v", ok, err)
	}

	ok, err = svc.Authenticate(context.Background(), "ghost@x.com", "adminpass")
	if err != nil || ok {
		t.Fatalf("expected unknown admin rejected without error, got %v,%v", ok, err)
	}

	ok, err = svc.Authenticate(context.Background(), "", "")
	if err != nil || ok {
		t.Fatalf("expected empty credentials rejected, got %v,%v", ok, err)
	}
}

func TestAdminServiceAuthenticate_StoreFailure(t *testing.T) {
	repo := newMockAdminRepo()
	repo.failWith = errors.New("db down")
	svc := NewAdminService(zap.NewNop(), repo)

	if _, err := svc.Authenticate(context.Background(), "admin@x.com", "adminpass"); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
