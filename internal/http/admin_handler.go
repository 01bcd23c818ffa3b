package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"storefront-api/internal/repository"
	"storefront-api/internal/service"
)

// AdminHandler mantiene dependencias para endpoints de administradores.
type AdminHandler struct {
	logger    *zap.Logger
	adminServ *service.AdminService
	admins    repository.AdminRepository
}

func NewAdminHandler(logger *zap.Logger, adminServ *service.AdminService, admins repository.AdminRepository) *AdminHandler {
	return &AdminHandler{
		logger:    logger,
		adminServ: adminServ,
		admins:    admins,
	}
}

// Login maneja POST /api/admin/login. Credenciales incorrectas responden 200
// con success=false, por compatibilidad con los clientes existentes.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	ok, err := h.adminServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// ListAdmins maneja GET /api/admins. Los hashes de contraseña nunca se listan.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list admins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, admins)
}

// DeleteAdmin maneja DELETE /api/admins/:id.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	if err := h.admins.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
			return
		}
		h.logger.Error("delete admin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
