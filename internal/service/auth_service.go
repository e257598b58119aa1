package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/mailer"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/repository"
)

// AuthService implements the email OTP login flow and session handling.
//
// Pending codes live in an in-memory TTL cache, never in the database: a code
// is only meaningful to the process that issued it, and restarting the server
// invalidating pending codes is acceptable. Sessions are fernet tokens carrying
// the user ID, backed by a database row so logout can revoke them before the
// token TTL runs out.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	mailer      mailer.Mailer

	keys       []*fernet.Key
	sessionTTL time.Duration
	otpTTL     time.Duration
	codeLength int

	codes *gocache.Cache

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
	otpRate   rate.Limit
}

// NewAuthService creates a new AuthService. sessionKey is a base64 fernet key;
// otpPerMinute bounds how often one email can request a code.
func NewAuthService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	m mailer.Mailer,
	sessionKey string,
	sessionTTL, otpTTL time.Duration,
	otpPerMinute float64,
	codeLength int,
) (*AuthService, error) {
	key, err := fernet.DecodeKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session key: %w", err)
	}

	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailer:      m,
		keys:        []*fernet.Key{key},
		sessionTTL:  sessionTTL,
		otpTTL:      otpTTL,
		codeLength:  codeLength,
		codes:       gocache.New(otpTTL, otpTTL),
		limiters:    make(map[string]*rate.Limiter),
		otpRate:     rate.Limit(otpPerMinute / 60.0),
	}, nil
}

// SendOTP issues a verification code for the email and delivers it through the
// mailer. A fresh request overwrites any pending code for the same email.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if !s.allow(email) {
		return apperrors.ErrOTPRateLimited
	}

	code, err := generateCode(s.codeLength)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	s.codes.Set(email, code, s.otpTTL)

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(s.otpTTL.Minutes()))
	if err := s.mailer.Send(ctx, email, "Your login code", body); err != nil {
		s.codes.Delete(email)
		return err
	}

	return nil
}

// VerifyOTP checks the submitted code. On success the code is consumed, the
// account is created on first login, and a session token is issued.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, found := s.codes.Get(email)
	if !found {
		return model.User{}, "", apperrors.ErrOTPExpired
	}

	expected := stored.(string)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) != 1 {
		return model.User{}, "", apperrors.ErrInvalidOTP
	}

	// Single use: consume the code before anything else can fail.
	s.codes.Delete(email)

	now := time.Now().UTC()

	user, err := s.userRepo.GetByEmail(email)
	switch {
	case err == apperrors.ErrUserNotFound:
		user = model.User{
			ID:          uuid.New().String(),
			Email:       email,
			Name:        nameFromEmail(email),
			CreatedAt:   now,
			LastLoginAt: now,
		}
		if err := s.userRepo.InsertUser(ctx, &user); err != nil {
			return model.User{}, "", err
		}

	case err != nil:
		return model.User{}, "", fmt.Errorf("failed to load user: %w", err)

	default:
		user.LastLoginAt = now
		if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
			return model.User{}, "", err
		}
	}

	token, err := fernet.EncryptAndSign([]byte(user.ID), s.keys[0])
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	session := &model.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     string(token),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.InsertSession(ctx, session); err != nil {
		return model.User{}, "", err
	}

	return user, string(token), nil
}

// Authenticate resolves a session token to the owning user ID. The token must
// pass fernet verification within the session TTL and its session row must
// still exist (logout deletes it).
func (s *AuthService) Authenticate(token string) (string, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), s.sessionTTL, s.keys)
	if payload == nil {
		return "", apperrors.ErrInvalidSessionToken
	}

	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return "", err
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		return "", apperrors.ErrInvalidSessionToken
	}

	return session.UserID, nil
}

// Logout revokes the session behind the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// SweepExpiredSessions deletes expired session rows. Run periodically by the
// scheduler.
func (s *AuthService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
}

// allow reports whether the email may request another code right now.
func (s *AuthService) allow(email string) bool {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()

	limiter, ok := s.limiters[email]
	if !ok {
		limiter = rate.NewLimiter(s.otpRate, 1)
		s.limiters[email] = limiter
	}

	return limiter.Allow()
}

// generateCode produces a numeric code of the given length using crypto/rand.
func generateCode(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// nameFromEmail derives a default display name from the local part of an email.
func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
