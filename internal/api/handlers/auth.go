package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/service"
	"github.com/cryptoassets/portal/internal/validation"
)

// AuthHandler handles OTP login and logout HTTP requests.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SendOTP handles POST /api/auth/otp/send. Always answers 200 on success so
// the endpoint does not reveal whether an account exists for the email.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateSendOTPRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.authService.SendOTP(r.Context(), req.Email); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// VerifyOTPResponse represents a successful login response.
type VerifyOTPResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents the authenticated user in API responses.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// VerifyOTP handles POST /api/auth/otp/verify.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateVerifyOTPRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	user, token, err := h.authService.VerifyOTP(r.Context(), req.Email, req.Code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyOTPResponse{
		Token: token,
		User: UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			CreatedAt:   user.CreatedAt,
			LastLoginAt: user.LastLoginAt,
		},
	})
}

// Logout handles POST /api/auth/logout. It revokes the session named by the
// Authorization header; the route already sits behind the auth middleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		response.RespondError(w, http.StatusUnauthorized, "authorization header required", "")
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
