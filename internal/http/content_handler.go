package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

// ContentHandler mantiene dependencias para los endpoints de registros simples:
// contactos, suscriptores, reseñas y las tablas históricas users1/users2.
type ContentHandler struct {
	logger       *zap.Logger
	contacts     repository.ContactRepository
	subscribers  repository.SubscriberRepository
	reviews      repository.ReviewRepository
	bankProfiles repository.BankProfileRepository
	leads        repository.LeadRepository
}

func NewContentHandler(
	logger *zap.Logger,
	contacts repository.ContactRepository,
	subscribers repository.SubscriberRepository,
	reviews repository.ReviewRepository,
	bankProfiles repository.BankProfileRepository,
	leads repository.LeadRepository,
) *ContentHandler {
	return &ContentHandler{
		logger:       logger,
		contacts:     contacts,
		subscribers:  subscribers,
		reviews:      reviews,
		bankProfiles: bankProfiles,
		leads:        leads,
	}
}

// CreateContact maneja POST /api/contact.
func (h *ContentHandler) CreateContact(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	contact := domain.Contact{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.contacts.Create(c.Request.Context(), contact); err != nil {
		h.logger.Error("create contact failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message saved successfully!"})
}

// ListContacts maneja GET /api/contacts.
func (h *ContentHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// DeleteContact maneja DELETE /api/contacts/:id.
func (h *ContentHandler) DeleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
			return
		}
		h.logger.Error("delete contact failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// Subscribe maneja POST /api/subscribe. El duplicado lo detecta la restricción
// de unicidad de la tabla, a diferencia del alta de usuarios.
func (h *ContentHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	sub := domain.Subscriber{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		SubscribedAt: time.Now().UTC(),
	}
	if err := h.subscribers.Create(c.Request.Context(), sub); err != nil {
		if repository.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Already subscribed"})
			return
		}
		h.logger.Error("subscribe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription successful"})
}

// ListSubscribers maneja GET /api/subscribers.
func (h *ContentHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.subscribers.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list subscribers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// DeleteSubscriber maneja DELETE /api/subscribers/:id.
func (h *ContentHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.subscribers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Subscriber not found"})
			return
		}
		h.logger.Error("delete subscriber failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted successfully"})
}

// CreateReview maneja POST /api/reviews.
func (h *ContentHandler) CreateReview(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Name == "" || req.Rating == 0 || strings.TrimSpace(req.Comment) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.reviews.Create(c.Request.Context(), review); err != nil {
		h.logger.Error("create review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      review.ID,
		"name":    review.Name,
		"rating":  review.Rating,
		"comment": review.Comment,
	})
}

// ListReviews maneja GET /api/reviews, de la más reciente a la más antigua.
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list reviews failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateBankProfile maneja POST /api/users1.
func (h *ContentHandler) CreateBankProfile(c *gin.Context) {
	var req struct {
		FirstName     string `json:"firstName"`
		LastName      string `json:"lastName"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		Pincode       string `json:"pincode"`
		AccountNumber string `json:"accountNumber"`
		IFSCCode      string `json:"ifscCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	profile := domain.BankProfile{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Pincode:       req.Pincode,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.bankProfiles.Create(c.Request.Context(), profile); err != nil {
		h.logger.Error("create bank profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User saved successfully"})
}

// ListBankProfiles maneja GET /api/users1.
func (h *ContentHandler) ListBankProfiles(c *gin.Context) {
	profiles, err := h.bankProfiles.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list bank profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// DeleteBankProfile maneja DELETE /api/users1/:id.
func (h *ContentHandler) DeleteBankProfile(c *gin.Context) {
	if err := h.bankProfiles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("delete bank profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// CreateLead maneja POST /api/save-user2.
func (h *ContentHandler) CreateLead(c *gin.Context) {
	var req struct {
		EmailOrMobile string `json:"emailOrMobile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EmailOrMobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email/Mobile required"})
		return
	}

	lead := domain.Lead{
		ID:            uuid.NewString(),
		EmailOrMobile: req.EmailOrMobile,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.leads.Create(c.Request.Context(), lead); err != nil {
		h.logger.Error("create lead failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": lead.ID})
}

// ListLeads maneja GET /api/users2.
func (h *ContentHandler) ListLeads(c *gin.Context) {
	leads, err := h.leads.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list leads failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// DeleteLead maneja DELETE /api/users2/:id.
func (h *ContentHandler) DeleteLead(c *gin.Context) {
	if err := h.leads.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("delete lead failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
