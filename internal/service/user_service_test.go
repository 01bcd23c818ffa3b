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

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	failWith     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	if m.failWith != nil {
		return domain.User{}, m.failWith
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.usersByID[id], nil
}

func (m *mockUserRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	if m.failWith != nil {
		return m.failWith
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return pgx.ErrNoRows
	}
	user := m.usersByID[id]
	user.PasswordHash = passwordHash
	m.usersByID[id] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	users := make([]domain.User, 0, len(m.usersByID))
	for _, u := range m.usersByID {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(m.usersByID, id)
	delete(m.usersByEmail, user.Email)
	return nil
}

func TestUserServiceRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "a@x.com",
		Phone:     "5550001",
		Address:   "1 Main St",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("expected user stored, got %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret1" {
		t.Fatalf("expected password stored as hash, got %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("expected hash to verify the original password, got %v", err)
	}
}

func TestUserServiceRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("first register should succeed, got %v", err)
	}
	err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "other", FirstName: "Other"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserServiceRegister_EmptyEmail(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())
	err := svc.Register(context.Background(), RegisterInput{Password: "secret1"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestUserServiceRegister_StoreFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.failWith = errors.New("db down")
	svc := NewUserService(zap.NewNop(), repo)

	err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1"})
	if err == nil || errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "a@x.com",
		Password:  "secret1",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("expected authenticate success, got %v", err)
	}
	if user.Email != "a@x.com" || user.DisplayName() != "Jane Doe" {
		t.Fatalf("unexpected identity projection: %+v", user)
	}

	if _, err := svc.Authenticate(context.Background(), "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "missing@x.com", "secret1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@x.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestUserServiceChangePassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "a@x.com", "secret2"); err != nil {
		t.Fatalf("expected change password success, got %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "a@x.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@x.com", "secret2"); err != nil {
		t.Fatalf("expected new password accepted, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "missing@x.com", "secret2"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceEmailNormalization(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if err := svc.Register(context.Background(), RegisterInput{Email: " A@X.com ", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.GetByEmail(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("expected lowercase email stored, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "A@x.COM", "secret1"); err != nil {
		t.Fatalf("expected normalized login to succeed, got %v", err)
	}
}
