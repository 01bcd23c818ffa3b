package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	userH *UserHandler,
	otpH *OTPHandler,
	adminH *AdminHandler,
	contentH *ContentHandler,
	paymentH *PaymentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging, recovery, CORS abierto y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), cors.Default(), jsonContentTypeMiddleware())

	// Los endpoints de OTP viven fuera de /api, por compatibilidad.
	r.POST("/send-otp", otpH.SendOTP)
	r.POST("/verify-otp", otpH.VerifyOTP)

	api := r.Group("/api")

	api.POST("/signup", userH.Signup)
	api.POST("/login", userH.Login)
	api.POST("/auth/login", userH.LoginAlt)
	api.POST("/change-password", userH.ChangePassword)
	api.GET("/users", userH.ListUsers)
	api.DELETE("/users/:id", userH.DeleteUser)
	api.GET("/user/:email/:password", userH.GetUserByCredentials)

	api.POST("/admin/login", adminH.Login)
	api.GET("/admins", adminH.ListAdmins)
	api.DELETE("/admins/:id", adminH.DeleteAdmin)

	api.POST("/contact", contentH.CreateContact)
	api.GET("/contacts", contentH.ListContacts)
	api.DELETE("/contacts/:id", contentH.DeleteContact)

	api.POST("/subscribe", contentH.Subscribe)
	api.GET("/subscribers", contentH.ListSubscribers)
	api.DELETE("/subscribers/:id", contentH.DeleteSubscriber)

	api.POST("/reviews", contentH.CreateReview)
	api.GET("/reviews", contentH.ListReviews)

	api.POST("/users1", contentH.CreateBankProfile)
	api.GET("/users1", contentH.ListBankProfiles)
	api.DELETE("/users1/:id", contentH.DeleteBankProfile)

	api.POST("/save-user2", contentH.CreateLead)
	api.GET("/users2", contentH.ListLeads)
	api.DELETE("/users2/:id", contentH.DeleteLead)

	api.POST("/payment/orders", paymentH.CreateOrder)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
