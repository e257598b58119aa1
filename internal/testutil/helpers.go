package testutil

import (
	"database/sql"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/cryptoassets/portal/internal/feed"
	"github.com/cryptoassets/portal/internal/repository"
	"github.com/cryptoassets/portal/internal/service"
)

func NewTestMarketService(t *testing.T, db *sql.DB, feedClient feed.Client) *service.MarketService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	statsRepo := repository.NewMarketStatsRepository(db)

	return service.NewMarketService(assetRepo, statsRepo, feedClient)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewPortfolioService(
		holdingRepo,
		transactionRepo,
		NewTestMarketService(t, db, nil),
	)
}

func NewTestWatchlistService(t *testing.T, db *sql.DB) *service.WatchlistService {
	t.Helper()

	watchlistRepo := repository.NewWatchlistRepository(db)

	return service.NewWatchlistService(watchlistRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestAuthService creates an AuthService backed by the given database, a
// fresh fernet key and the provided mailer. The OTP rate limit is disabled so
// tests can send codes back to back; tests that exercise the limit construct
// the service themselves with a finite rate.
func NewTestAuthService(t *testing.T, db *sql.DB, m *RecordingMailer) *service.AuthService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	svc, err := service.NewAuthService(
		userRepo,
		sessionRepo,
		m,
		MakeSessionKey(t),
		time.Hour,
		5*time.Minute,
		math.Inf(1),
		6,
	)
	if err != nil {
		t.Fatalf("Failed to create test auth service: %v", err)
	}

	return svc
}

// MakeSessionKey generates a fresh base64 fernet key for testing.
func MakeSessionKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("BTC")
//	// Returns: "BTC1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TST"
	}
	return base + randomAlphanumeric(4)
}

// MakeEmail generates a unique email address for testing.
//
// Example usage:
//
//	email := testutil.MakeEmail("alice")
//	// Returns: "alice-1a2b3c@example.com"
func MakeEmail(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "-" + randomAlphanumeric(6) + "@example.com"
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
