package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/service"
)

func setupOTPRouter(sender *mockEmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewOTPService(zap.NewNop(), service.NewMemoryOTPStore(), sender, 10*time.Minute)
	h := NewOTPHandler(zap.NewNop(), svc)
	r := gin.New()
	r.POST("/send-otp", h.SendOTP)
	r.POST("/verify-otp", h.VerifyOTP)
	return r
}

func TestOTPHandlerSendAndVerify(t *testing.T) {
	sender := &mockEmailSender{}
	r := setupOTPRouter(sender)

	rec := performRequest(r, http.MethodPost, "/send-otp", map[string]string{"toEmail": "a@x.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != true || body["message"] != "OTP sent to email" {
		t.Fatalf("unexpected body: %v", body)
	}
	if sender.lastTo != "a@x.com" || len(sender.lastCode) != 6 {
		t.Fatalf("unexpected dispatch: to=%q code=%q", sender.lastTo, sender.lastCode)
	}

	rec = performRequest(r, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   sender.lastCode,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != true || body["message"] != "OTP verified" {
		t.Fatalf("unexpected body: %v", body)
	}

	// El código se consume al verificar.
	rec = performRequest(r, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   sender.lastCode,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on reuse, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Invalid OTP" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestOTPHandlerSend_ValidationAndDispatchFailure(t *testing.T) {
	sender := &mockEmailSender{}
	r := setupOTPRouter(sender)

	rec := performRequest(r, http.MethodPost, "/send-otp", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Email required" {
		t.Fatalf("unexpected body: %v", body)
	}

	sender.err = errTestFailure
	rec = performRequest(r, http.MethodPost, "/send-otp", map[string]string{"toEmail": "a@x.com"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != false || body["message"] != "Failed to send OTP" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestOTPHandlerVerify_MissingFields(t *testing.T) {
	r := setupOTPRouter(&mockEmailSender{})

	rec := performRequest(r, http.MethodPost, "/verify-otp", map[string]string{"email": "a@x.com"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Email and OTP required" {
		t.Fatalf("unexpected body: %v", body)
	}
}
