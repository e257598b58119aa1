package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that the user holds no position for the given symbol.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrWatchlistItemNotFound indicates that the symbol is not on the user's watchlist.
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")

	// ErrAssetNotFound indicates that no asset with the given symbol exists in the catalog.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUserNotFound indicates that no account exists for the given email address.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound indicates that the session token has been revoked or never existed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrMarketStatsNotFound indicates that the market statistics row has not been seeded.
	ErrMarketStatsNotFound = errors.New("market stats not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidQuantity indicates a non-positive quantity on a buy or sell.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPrice indicates a non-positive price on a buy or sell.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidTargetPrice indicates a non-positive alert target price.
	ErrInvalidTargetPrice = errors.New("target price must be positive")

	// ErrInvalidAlertType indicates an alert type outside above/below/both.
	ErrInvalidAlertType = errors.New("invalid alert type")

	// ErrDuplicateWatchlistEntry indicates the symbol is already on the watchlist.
	ErrDuplicateWatchlistEntry = errors.New("symbol already on watchlist")

	// ErrInvalidSymbol indicates an empty or malformed asset symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Authentication errors represent failures in the OTP login flow and session handling.
var (
	// ErrInvalidOTP indicates the submitted code does not match the issued one.
	ErrInvalidOTP = errors.New("invalid verification code")

	// ErrOTPExpired indicates no code is pending for the email, or it has expired.
	ErrOTPExpired = errors.New("verification code expired")

	// ErrOTPRateLimited indicates too many code requests for the same email.
	ErrOTPRateLimited = errors.New("too many verification code requests")

	// ErrInvalidSessionToken indicates a token that fails signature or TTL verification.
	ErrInvalidSessionToken = errors.New("invalid or expired session token")
)
