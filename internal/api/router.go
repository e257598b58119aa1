package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cryptoassets/portal/internal/api/handlers"
	custommiddleware "github.com/cryptoassets/portal/internal/api/middleware"
	"github.com/cryptoassets/portal/internal/config"
	"github.com/cryptoassets/portal/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	System    *service.SystemService
	Auth      *service.AuthService
	Portfolio *service.PortfolioService
	Watchlist *service.WatchlistService
	Market    *service.MarketService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	requireAuth := custommiddleware.Auth(svcs.Auth)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(svcs.Auth)
			r.Post("/otp/send", authHandler.SendOTP)
			r.Post("/otp/verify", authHandler.VerifyOTP)
			r.With(requireAuth).Post("/logout", authHandler.Logout)
		})

		r.Route("/market", func(r chi.Router) {
			marketHandler := handlers.NewMarketHandler(svcs.Market)
			r.Get("/assets", marketHandler.Assets)
			r.Get("/search", marketHandler.Search)
			r.Get("/stats", marketHandler.Stats)
			r.Get("/trending", marketHandler.Trending)
			r.With(custommiddleware.ValidateSymbolMiddleware).
				Get("/assets/{symbol}", marketHandler.AssetBySymbol)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Use(requireAuth)
			portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio)
			r.Get("/", portfolioHandler.Holdings)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/transactions", portfolioHandler.Transactions)
			r.Post("/buy", portfolioHandler.Buy)
			r.Post("/sell", portfolioHandler.Sell)
		})

		r.Route("/watchlist", func(r chi.Router) {
			r.Use(requireAuth)
			watchlistHandler := handlers.NewWatchlistHandler(svcs.Watchlist)
			r.Get("/", watchlistHandler.List)
			r.Post("/", watchlistHandler.Add)
			r.With(custommiddleware.ValidateSymbolMiddleware).Route("/{symbol}", func(r chi.Router) {
				r.Delete("/", watchlistHandler.Remove)
				r.Put("/alert", watchlistHandler.SetAlert)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			adminHandler := handlers.NewAdminHandler(svcs.Market)
			r.Post("/market/seed", adminHandler.ReseedMarket)
			r.Post("/market/refresh", adminHandler.RefreshPrices)
		})
	})

	return r
}
