package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/repository"
)

// AdminService valida credenciales de administradores. Los administradores son
// un dominio de confianza separado de los usuarios, sin relación entre tablas.
type AdminService struct {
	logger *zap.Logger
	admins repository.AdminRepository
}

func NewAdminService(logger *zap.Logger, admins repository.AdminRepository) *AdminService {
	return &AdminService{
		logger: logger,
		admins: admins,
	}
}

// Authenticate devuelve true solo si el admin existe y la contraseña coincide
// con el hash almacenado. Un admin inexistente no es un error.
func (s *AdminService) Authenticate(ctx context.Context, emailAddr, password string) (bool, error) {
	if s.admins == nil {
		return false, errors.New("admin service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return false, nil
	}

	admin, err := s.admins.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if admin.PasswordHash == "" {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
