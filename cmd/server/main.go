package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cryptoassets/portal/internal/api"
	"github.com/cryptoassets/portal/internal/config"
	"github.com/cryptoassets/portal/internal/database"
	"github.com/cryptoassets/portal/internal/feed"
	"github.com/cryptoassets/portal/internal/mailer"
	"github.com/cryptoassets/portal/internal/repository"
	"github.com/cryptoassets/portal/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	statsRepo := repository.NewMarketStatsRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Create services
	systemService := service.NewSystemService(db)

	var feedClient feed.Client
	if cfg.Market.PriceSource == "live" {
		feedClient = feed.NewYahooClient()
	}
	marketService := service.NewMarketService(assetRepo, statsRepo, feedClient)

	portfolioService := service.NewPortfolioService(
		holdingRepo,
		transactionRepo,
		marketService,
	)
	watchlistService := service.NewWatchlistService(watchlistRepo)

	var m mailer.Mailer = &mailer.LogMailer{}
	if cfg.Mail.MailgunDomain != "" && cfg.Mail.MailgunAPIKey != "" {
		m = mailer.NewMailgun(cfg.Mail.MailgunDomain, cfg.Mail.MailgunAPIKey, cfg.Mail.Sender)
	}

	authService, err := service.NewAuthService(
		userRepo,
		sessionRepo,
		m,
		cfg.Auth.SessionKey,
		cfg.Auth.SessionTTL,
		cfg.Auth.OTPTTL,
		cfg.Auth.OTPPerMinute,
		cfg.Auth.OTPCodeLength,
	)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Seed the asset catalog on first run
	if err := marketService.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed market data: %v", err)
	}

	// Background jobs: price refresh and session cleanup
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+cfg.Market.RefreshInterval.String(), func() {
		if err := marketService.RefreshPrices(context.Background()); err != nil {
			log.Printf("Price refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule price refresh: %v", err)
	}
	if _, err := scheduler.AddFunc("@every 1h", func() {
		if _, err := authService.SweepExpiredSessions(context.Background()); err != nil {
			log.Printf("Session sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}
	scheduler.Start()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Auth:      authService,
		Portfolio: portfolioService,
		Watchlist: watchlistService,
		Market:    marketService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop scheduled jobs before draining in-flight requests
	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
