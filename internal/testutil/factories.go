package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cryptoassets/portal/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().
//	    WithEmail("alice@example.com").
//	    WithName("Alice").
//	    Build(t, db)
type UserBuilder struct {
	ID          string
	Email       string
	Name        string
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	now := time.Now().UTC()
	return &UserBuilder{
		ID:          MakeID(),
		Email:       MakeEmail("user"),
		Name:        "Test User",
		CreatedAt:   now,
		LastLoginAt: now,
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithName sets a custom name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user_account (id, email, name, created_at, last_login_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Email, b.Name, b.CreatedAt, b.LastLoginAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:          b.ID,
		Email:       b.Email,
		Name:        b.Name,
		CreatedAt:   b.CreatedAt,
		LastLoginAt: b.LastLoginAt,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding(user.ID).
//	    WithSymbol("BTC").
//	    WithQuantity(2).
//	    WithAvgBuyPrice(65000).
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	UserID        string
	Symbol        string
	Quantity      float64
	AvgBuyPrice   float64
	TotalInvested float64
	PurchaseDate  time.Time
	Notes         string
}

// NewHolding creates a HoldingBuilder with sensible defaults.
// TotalInvested tracks quantity*avgBuyPrice unless overridden.
func NewHolding(userID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:           MakeID(),
		UserID:       userID,
		Symbol:       MakeSymbol("BTC"),
		Quantity:     1,
		AvgBuyPrice:  50000,
		PurchaseDate: time.Now().UTC(),
	}
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets a custom quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithAvgBuyPrice sets a custom average buy price.
func (b *HoldingBuilder) WithAvgBuyPrice(price float64) *HoldingBuilder {
	b.AvgBuyPrice = price
	return b
}

// WithTotalInvested overrides the derived invested amount.
func (b *HoldingBuilder) WithTotalInvested(invested float64) *HoldingBuilder {
	b.TotalInvested = invested
	return b
}

// WithPurchaseDate sets a custom purchase date.
func (b *HoldingBuilder) WithPurchaseDate(date time.Time) *HoldingBuilder {
	b.PurchaseDate = date
	return b
}

// WithNotes sets custom notes.
func (b *HoldingBuilder) WithNotes(notes string) *HoldingBuilder {
	b.Notes = notes
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	invested := b.TotalInvested
	if invested == 0 {
		invested = b.Quantity * b.AvgBuyPrice
	}

	query := `
		INSERT INTO holding (id, user_id, symbol, quantity, avg_buy_price, total_invested, purchase_date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Symbol, b.Quantity, b.AvgBuyPrice, invested, b.PurchaseDate, b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:            b.ID,
		UserID:        b.UserID,
		Symbol:        b.Symbol,
		Quantity:      b.Quantity,
		AvgBuyPrice:   b.AvgBuyPrice,
		TotalInvested: invested,
		PurchaseDate:  b.PurchaseDate,
		Notes:         b.Notes,
	}
}

// WatchlistItemBuilder provides a fluent interface for creating test watchlist entries.
type WatchlistItemBuilder struct {
	ID           string
	UserID       string
	Symbol       string
	Name         string
	AddedDate    time.Time
	AlertEnabled bool
	TargetPrice  *float64
	AlertType    *string
}

// NewWatchlistItem creates a WatchlistItemBuilder with sensible defaults.
func NewWatchlistItem(userID string) *WatchlistItemBuilder {
	return &WatchlistItemBuilder{
		ID:        MakeID(),
		UserID:    userID,
		Symbol:    MakeSymbol("ETH"),
		Name:      "Test Asset",
		AddedDate: time.Now().UTC(),
	}
}

// WithSymbol sets a custom symbol.
func (b *WatchlistItemBuilder) WithSymbol(symbol string) *WatchlistItemBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *WatchlistItemBuilder) WithName(name string) *WatchlistItemBuilder {
	b.Name = name
	return b
}

// WithAlert configures a price alert on the entry.
func (b *WatchlistItemBuilder) WithAlert(targetPrice float64, alertType string) *WatchlistItemBuilder {
	b.AlertEnabled = true
	b.TargetPrice = &targetPrice
	b.AlertType = &alertType
	return b
}

// Build creates the watchlist entry in the database and returns it.
func (b *WatchlistItemBuilder) Build(t *testing.T, db *sql.DB) model.WatchlistItem {
	t.Helper()

	query := `
		INSERT INTO watchlist_item (id, user_id, symbol, name, added_date, alert_enabled, target_price, alert_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Symbol, b.Name, b.AddedDate, b.AlertEnabled, b.TargetPrice, b.AlertType)
	if err != nil {
		t.Fatalf("Failed to create test watchlist entry: %v", err)
	}

	return model.WatchlistItem{
		ID:           b.ID,
		UserID:       b.UserID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		AddedDate:    b.AddedDate,
		AlertEnabled: b.AlertEnabled,
		TargetPrice:  b.TargetPrice,
		AlertType:    b.AlertType,
	}
}

// AssetBuilder provides a fluent interface for creating test catalog assets.
type AssetBuilder struct {
	ID           string
	Symbol       string
	Name         string
	CurrentPrice float64
	MarketCap    float64
	Rank         int
	LastUpdated  time.Time
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		ID:           MakeID(),
		Symbol:       MakeSymbol("TST"),
		Name:         "Test Coin",
		CurrentPrice: 100,
		MarketCap:    1e9,
		Rank:         1,
		LastUpdated:  time.Now().UTC(),
	}
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithPrice sets a custom current price.
func (b *AssetBuilder) WithPrice(price float64) *AssetBuilder {
	b.CurrentPrice = price
	return b
}

// WithRank sets a custom catalog rank.
func (b *AssetBuilder) WithRank(rank int) *AssetBuilder {
	b.Rank = rank
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (
			id, symbol, name, current_price, market_cap, volume_24h,
			price_change_24h, price_change_7d, circulating_supply, total_supply,
			ath, atl, image_url, rank, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Symbol, b.Name, b.CurrentPrice, b.MarketCap, 0.0,
		0.0, 0.0, 0.0, nil,
		b.CurrentPrice, 0.0, "", b.Rank, b.LastUpdated,
	)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:           b.ID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		CurrentPrice: b.CurrentPrice,
		MarketCap:    b.MarketCap,
		ATH:          b.CurrentPrice,
		Rank:         b.Rank,
		LastUpdated:  b.LastUpdated,
	}
}

// Convenience functions

// CreateUser creates a user with the given email and default values.
func CreateUser(t *testing.T, db *sql.DB, email string) model.User {
	t.Helper()
	return NewUser().WithEmail(email).Build(t, db)
}

// CreateHolding creates a holding for the user with derived invested amount.
func CreateHolding(t *testing.T, db *sql.DB, userID, symbol string, quantity, avgBuyPrice float64) model.Holding {
	t.Helper()
	return NewHolding(userID).
		WithSymbol(symbol).
		WithQuantity(quantity).
		WithAvgBuyPrice(avgBuyPrice).
		Build(t, db)
}

// CreateAsset creates a catalog asset with the given symbol and price.
func CreateAsset(t *testing.T, db *sql.DB, symbol string, price float64) model.Asset {
	t.Helper()
	return NewAsset().WithSymbol(symbol).WithPrice(price).Build(t, db)
}
