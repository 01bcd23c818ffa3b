package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/email"
	apihttp "storefront-api/internal/http"
	"storefront-api/internal/payment"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	subscriberRepo := repository.NewPgSubscriberRepository(pool)
	reviewRepo := repository.NewPgReviewRepository(pool)
	bankProfileRepo := repository.NewPgBankProfileRepository(pool)
	leadRepo := repository.NewPgLeadRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewGomailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var otpStore service.OTPStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			otpStore = service.NewRedisOTPStore(redisClient)
		}
		cancel()
	}
	if otpStore == nil {
		otpStore = service.NewMemoryOTPStore()
	}

	orderGateway := payment.NewDisabledGateway("payment gateway not configured")
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		orderGateway = payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}

	userSvc := service.NewUserService(logger, userRepo)
	adminSvc := service.NewAdminService(logger, adminRepo)
	otpSvc := service.NewOTPService(logger, otpStore, emailSender, time.Duration(cfg.OTPTTLMinutes)*time.Minute)

	userHandler := apihttp.NewUserHandler(logger, userSvc, userRepo)
	otpHandler := apihttp.NewOTPHandler(logger, otpSvc)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc, adminRepo)
	contentHandler := apihttp.NewContentHandler(logger, contactRepo, subscriberRepo, reviewRepo, bankProfileRepo, leadRepo)
	paymentHandler := apihttp.NewPaymentHandler(logger, orderGateway)

	router := apihttp.NewRouter(logger, userHandler, otpHandler, adminHandler, contentHandler, paymentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
