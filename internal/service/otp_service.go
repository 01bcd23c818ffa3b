package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"storefront-api/internal/email"
)

var (
	ErrOTPInvalid       = errors.New("otp invalid")
	ErrEmailSendFailure = errors.New("email send failed")
)

const defaultOTPTTL = 10 * time.Minute

// OTPService emite y verifica códigos de un solo uso ligados a un email.
type OTPService struct {
	logger *zap.Logger
	store  OTPStore
	sender email.Sender
	ttl    time.Duration
}

func NewOTPService(logger *zap.Logger, store OTPStore, sender email.Sender, ttl time.Duration) *OTPService {
	if store == nil {
		store = NewMemoryOTPStore()
	}
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	return &OTPService{
		logger: logger,
		store:  store,
		sender: sender,
		ttl:    ttl,
	}
}

// Issue genera un código de 6 dígitos, lo guarda (pisando cualquier código
// previo para ese email) y lo despacha por correo. Si el despacho falla, el
// código ya guardado queda vigente.
func (s *OTPService) Issue(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return ErrInvalidEmail
	}

	code, hash, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.store.Put(emailAddr, hash, s.ttl); err != nil {
		return err
	}

	if s.sender == nil {
		return ErrEmailSendFailure
	}
	expiresAt := time.Now().UTC().Add(s.ttl)
	if err := s.sender.SendVerificationOTP(ctx, emailAddr, code, expiresAt); err != nil {
		if s.logger != nil {
			s.logger.Warn("send otp failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return ErrEmailSendFailure
	}
	return nil
}

// Verify consume el código si coincide exactamente; un código ausente,
// vencido o equivocado se reporta con el mismo error.
func (s *OTPService) Verify(_ context.Context, emailAddr, code string) error {
	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	if emailAddr == "" {
		return ErrInvalidEmail
	}
	if !isValidOTPCode(code) {
		return ErrOTPInvalid
	}

	stored, ok, err := s.store.Get(emailAddr)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOTPInvalid
	}
	if !verifyOTP(code, stored) {
		return ErrOTPInvalid
	}

	return s.store.Delete(emailAddr)
}

// generateOTP devuelve un código uniforme en [100000, 999999] y su hash
// salteado para guardar en reposo.
func generateOTP() (string, string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", "", err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}
	saltStr := base64.StdEncoding.EncodeToString(salt)
	hashBytes := sha256.Sum256([]byte(saltStr + ":" + code))
	hash := base64.StdEncoding.EncodeToString(hashBytes[:])

	return code, saltStr + ":" + hash, nil
}

func verifyOTP(code, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false
	}
	saltStr := parts[0]
	expectedHash := parts[1]
	hashBytes := sha256.Sum256([]byte(saltStr + ":" + code))
	hash := base64.StdEncoding.EncodeToString(hashBytes[:])
	return subtle.ConstantTimeCompare([]byte(hash), []byte(expectedHash)) == 1
}

func isValidOTPCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
