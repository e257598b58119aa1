package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/repository"
	"github.com/cryptoassets/portal/internal/service"
	"github.com/cryptoassets/portal/internal/testutil"
)

// TestAuthService_OTPFlow tests the full email login flow.
//
// WHY: Login is send-code, verify-code, receive-token. The code must be
// single use, a wrong code must not consume it, and the first successful
// verification must create the account.
func TestAuthService_OTPFlow(t *testing.T) {
	t.Run("verifies the emailed code and issues a session", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		email := testutil.MakeEmail("alice")

		// Execute
		if err := svc.SendOTP(context.Background(), email); err != nil {
			t.Fatalf("SendOTP() returned unexpected error: %v", err)
		}
		user, token, err := svc.VerifyOTP(context.Background(), email, m.LastCode(t))

		// Assert
		if err != nil {
			t.Fatalf("VerifyOTP() returned unexpected error: %v", err)
		}
		if token == "" {
			t.Error("Expected a session token")
		}
		if user.ID == "" {
			t.Error("Expected a user to be created")
		}

		userID, err := svc.Authenticate(token)
		if err != nil {
			t.Fatalf("Authenticate() returned unexpected error: %v", err)
		}
		if userID != user.ID {
			t.Errorf("Expected token to resolve to %s, got %s", user.ID, userID)
		}

		testutil.AssertRowCount(t, db, "user_account", 1)
		testutil.AssertRowCount(t, db, "session", 1)
	})

	t.Run("normalizes the email address", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)

		// Execute: request with shouting caps, verify lowercase
		if err := svc.SendOTP(context.Background(), "  ALICE@Example.COM "); err != nil {
			t.Fatalf("SendOTP() returned unexpected error: %v", err)
		}
		user, _, err := svc.VerifyOTP(context.Background(), "alice@example.com", m.LastCode(t))

		// Assert
		if err != nil {
			t.Fatalf("VerifyOTP() returned unexpected error: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("Expected normalized email, got %q", user.Email)
		}
	})

	t.Run("rejects a wrong code without consuming the pending one", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		email := testutil.MakeEmail("bob")

		if err := svc.SendOTP(context.Background(), email); err != nil {
			t.Fatalf("SendOTP() failed: %v", err)
		}

		// Execute
		_, _, err := svc.VerifyOTP(context.Background(), email, "000000")
		if !errors.Is(err, apperrors.ErrInvalidOTP) {
			t.Fatalf("Expected ErrInvalidOTP, got %v", err)
		}

		// The real code still works
		if _, _, err := svc.VerifyOTP(context.Background(), email, m.LastCode(t)); err != nil {
			t.Errorf("Expected real code to still verify, got %v", err)
		}
	})

	t.Run("consumes the code on success", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		email := testutil.MakeEmail("carol")

		if err := svc.SendOTP(context.Background(), email); err != nil {
			t.Fatalf("SendOTP() failed: %v", err)
		}
		code := m.LastCode(t)
		if _, _, err := svc.VerifyOTP(context.Background(), email, code); err != nil {
			t.Fatalf("First VerifyOTP() failed: %v", err)
		}

		// Execute: replaying the code must fail
		_, _, err := svc.VerifyOTP(context.Background(), email, code)

		// Assert
		if !errors.Is(err, apperrors.ErrOTPExpired) {
			t.Errorf("Expected ErrOTPExpired on replay, got %v", err)
		}
	})

	t.Run("reports expired when no code is pending", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db, &testutil.RecordingMailer{})

		// Execute
		_, _, err := svc.VerifyOTP(context.Background(), "nobody@example.com", "123456")

		// Assert
		if !errors.Is(err, apperrors.ErrOTPExpired) {
			t.Errorf("Expected ErrOTPExpired, got %v", err)
		}
	})

	t.Run("does not keep a pending code when delivery fails", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{Err: errors.New("smtp down")}
		svc := testutil.NewTestAuthService(t, db, m)
		email := testutil.MakeEmail("dave")

		// Execute
		err := svc.SendOTP(context.Background(), email)

		// Assert
		if err == nil {
			t.Fatal("Expected delivery error")
		}
		// No code should be pending after the failure
		if _, _, err := svc.VerifyOTP(context.Background(), email, "123456"); !errors.Is(err, apperrors.ErrOTPExpired) {
			t.Errorf("Expected ErrOTPExpired, got %v", err)
		}
	})

	t.Run("reuses the account on repeat login", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		email := testutil.MakeEmail("erin")

		login := func() string {
			t.Helper()
			if err := svc.SendOTP(context.Background(), email); err != nil {
				t.Fatalf("SendOTP() failed: %v", err)
			}
			user, _, err := svc.VerifyOTP(context.Background(), email, m.LastCode(t))
			if err != nil {
				t.Fatalf("VerifyOTP() failed: %v", err)
			}
			return user.ID
		}

		// Execute
		first := login()
		second := login()

		// Assert
		if first != second {
			t.Errorf("Expected same user across logins, got %s and %s", first, second)
		}
		testutil.AssertRowCount(t, db, "user_account", 1)
		testutil.AssertRowCount(t, db, "session", 2)
	})
}

// TestAuthService_RateLimit tests the per-email OTP throttle.
func TestAuthService_RateLimit(t *testing.T) {
	t.Run("throttles repeated requests for the same email", func(t *testing.T) {
		// Setup: one code per minute, constructed directly for a finite rate
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc, err := service.NewAuthService(
			repository.NewUserRepository(db),
			repository.NewSessionRepository(db),
			m,
			testutil.MakeSessionKey(t),
			time.Hour,
			5*time.Minute,
			1,
			6,
		)
		if err != nil {
			t.Fatalf("NewAuthService() failed: %v", err)
		}
		email := testutil.MakeEmail("frank")

		// Execute
		if err := svc.SendOTP(context.Background(), email); err != nil {
			t.Fatalf("First SendOTP() failed: %v", err)
		}
		err = svc.SendOTP(context.Background(), email)

		// Assert
		if !errors.Is(err, apperrors.ErrOTPRateLimited) {
			t.Errorf("Expected ErrOTPRateLimited, got %v", err)
		}
		if m.SentCount() != 1 {
			t.Errorf("Expected 1 delivered mail, got %d", m.SentCount())
		}

		// A different email is not affected
		if err := svc.SendOTP(context.Background(), testutil.MakeEmail("grace")); err != nil {
			t.Errorf("Expected different email to pass, got %v", err)
		}
	})
}

// TestAuthService_Sessions tests token verification and revocation.
//
// WHY: Logout must revoke the session immediately even though the fernet
// token itself stays cryptographically valid until its TTL runs out.
func TestAuthService_Sessions(t *testing.T) {
	login := func(t *testing.T, svc *service.AuthService, m *testutil.RecordingMailer, email string) string {
		t.Helper()
		if err := svc.SendOTP(context.Background(), email); err != nil {
			t.Fatalf("SendOTP() failed: %v", err)
		}
		_, token, err := svc.VerifyOTP(context.Background(), email, m.LastCode(t))
		if err != nil {
			t.Fatalf("VerifyOTP() failed: %v", err)
		}
		return token
	}

	t.Run("rejects garbage tokens", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db, &testutil.RecordingMailer{})

		// Execute
		_, err := svc.Authenticate("not-a-token")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidSessionToken) {
			t.Errorf("Expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("rejects tokens after logout", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		token := login(t, svc, m, testutil.MakeEmail("henry"))

		// Execute
		if err := svc.Logout(context.Background(), token); err != nil {
			t.Fatalf("Logout() returned unexpected error: %v", err)
		}
		_, err := svc.Authenticate(token)

		// Assert
		if !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound after logout, got %v", err)
		}
		testutil.AssertRowCount(t, db, "session", 0)
	})

	t.Run("sweeps expired sessions", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		login(t, svc, m, testutil.MakeEmail("iris"))

		// Backdate the session past its expiry
		if _, err := db.Exec(`UPDATE session SET expires_at = ?`, time.Now().UTC().Add(-time.Hour)); err != nil {
			t.Fatalf("Failed to backdate session: %v", err)
		}

		// Execute
		deleted, err := svc.SweepExpiredSessions(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("SweepExpiredSessions() returned unexpected error: %v", err)
		}
		if deleted != 1 {
			t.Errorf("Expected 1 swept session, got %d", deleted)
		}
		testutil.AssertRowCount(t, db, "session", 0)
	})
}
