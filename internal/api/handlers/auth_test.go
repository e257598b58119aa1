package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/testutil"
)

func TestAuthHandler_SendOTP(t *testing.T) {
	setup := func(t *testing.T) (*AuthHandler, *testutil.RecordingMailer) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		return NewAuthHandler(testutil.NewTestAuthService(t, db, m)), m
	}

	t.Run("sends a code to a valid email", func(t *testing.T) {
		handler, m := setup(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/send",
			request.SendOTPRequest{Email: "alice@example.com"})
		w := httptest.NewRecorder()

		handler.SendOTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if m.SentCount() != 1 {
			t.Errorf("Expected 1 mail, got %d", m.SentCount())
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		handler, m := setup(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/send",
			request.SendOTPRequest{Email: "not-an-email"})
		w := httptest.NewRecorder()

		handler.SendOTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if m.SentCount() != 0 {
			t.Errorf("Expected no mail, got %d", m.SentCount())
		}
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	setup := func(t *testing.T) (*AuthHandler, *testutil.RecordingMailer) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		return NewAuthHandler(testutil.NewTestAuthService(t, db, m)), m
	}

	sendCode := func(t *testing.T, handler *AuthHandler, email string) {
		t.Helper()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/send",
			request.SendOTPRequest{Email: email})
		w := httptest.NewRecorder()
		handler.SendOTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("SendOTP failed: %d %s", w.Code, w.Body.String())
		}
	}

	t.Run("verifies the code and returns a token with the user", func(t *testing.T) {
		handler, m := setup(t)
		sendCode(t, handler, "alice@example.com")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/verify",
			request.VerifyOTPRequest{Email: "alice@example.com", Code: m.LastCode(t)})
		w := httptest.NewRecorder()

		handler.VerifyOTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp VerifyOTPResponse
		testutil.DecodeResponse(t, w, &resp)
		if resp.Token == "" {
			t.Error("Expected a session token")
		}
		if resp.User.Email != "alice@example.com" {
			t.Errorf("Expected user email, got %q", resp.User.Email)
		}
		if resp.User.Name != "alice" {
			t.Errorf("Expected derived name 'alice', got %q", resp.User.Name)
		}
	})

	t.Run("returns 400 for a wrong code", func(t *testing.T) {
		handler, m := setup(t)
		sendCode(t, handler, "bob@example.com")

		wrong := "000000"
		if wrong == m.LastCode(t) {
			wrong = "000001"
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/verify",
			request.VerifyOTPRequest{Email: "bob@example.com", Code: wrong})
		w := httptest.NewRecorder()

		handler.VerifyOTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 when no code is pending", func(t *testing.T) {
		handler, _ := setup(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/verify",
			request.VerifyOTPRequest{Email: "nobody@example.com", Code: "123456"})
		w := httptest.NewRecorder()

		handler.VerifyOTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a non-numeric code before hitting the service", func(t *testing.T) {
		handler, _ := setup(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/verify",
			request.VerifyOTPRequest{Email: "alice@example.com", Code: "abc123"})
		w := httptest.NewRecorder()

		handler.VerifyOTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the session named by the bearer token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		m := &testutil.RecordingMailer{}
		svc := testutil.NewTestAuthService(t, db, m)
		handler := NewAuthHandler(svc)

		// Log in for real to get a token
		sendReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/send",
			request.SendOTPRequest{Email: "alice@example.com"})
		sendW := httptest.NewRecorder()
		handler.SendOTP(sendW, sendReq)

		verifyReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/otp/verify",
			request.VerifyOTPRequest{Email: "alice@example.com", Code: m.LastCode(t)})
		verifyW := httptest.NewRecorder()
		handler.VerifyOTP(verifyW, verifyReq)

		var login VerifyOTPResponse
		testutil.DecodeResponse(t, verifyW, &login)

		// Execute
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		w := httptest.NewRecorder()

		handler.Logout(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "session", 0)

		if _, err := svc.Authenticate(login.Token); err == nil {
			t.Error("Expected token to be rejected after logout")
		}
	})

	t.Run("returns 401 without an authorization header", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewAuthHandler(testutil.NewTestAuthService(t, db, &testutil.RecordingMailer{}))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		w := httptest.NewRecorder()

		handler.Logout(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d: %s", w.Code, w.Body.String())
		}
	})
}
