package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/service"
)

// OTPHandler mantiene dependencias para los endpoints de OTP.
type OTPHandler struct {
	logger  *zap.Logger
	otpServ *service.OTPService
}

func NewOTPHandler(logger *zap.Logger, otpServ *service.OTPService) *OTPHandler {
	return &OTPHandler{
		logger:  logger,
		otpServ: otpServ,
	}
}

// SendOTP maneja POST /send-otp.
func (h *OTPHandler) SendOTP(c *gin.Context) {
	var req struct {
		ToEmail string `json:"toEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ToEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email required"})
		return
	}

	if err := h.otpServ.Issue(c.Request.Context(), req.ToEmail); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email required"})
			return
		}
		h.logger.Error("send otp failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to email"})
}

// VerifyOTP maneja POST /verify-otp. Un código nunca emitido, vencido o
// equivocado responde igual.
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and OTP required"})
		return
	}

	if err := h.otpServ.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and OTP required"})
		default:
			h.logger.Error("verify otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not verify OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified"})
}
