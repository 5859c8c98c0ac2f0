package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amassarte/pizzeria-backend/internal/core"
)

// ErrInvalidCredentials is returned when the admin password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired is returned when a token is well-formed but its backing
// session no longer exists.
var ErrSessionExpired = errors.New("session expired")

// AuthService handles the single-admin login. A successful login creates a
// server-side session and wraps its id in a signed JWT; validation checks
// both the signature and the session's existence, so logout revokes the
// token immediately.
type AuthService struct {
	sessions     core.SessionStore
	jwtSecret    string
	password     string
	passwordHash string
	tokenTTL     time.Duration
}

// NewAuthService creates an auth service. passwordHash (bcrypt) takes
// precedence over the plain password when both are set.
func NewAuthService(sessions core.SessionStore, jwtSecret, password, passwordHash string) *AuthService {
	return &AuthService{
		sessions:     sessions,
		jwtSecret:    jwtSecret,
		password:     password,
		passwordHash: passwordHash,
		tokenTTL:     12 * time.Hour,
	}
}

// Login checks the password and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if !s.checkPassword(password) {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	if err := s.sessions.Create(ctx, sessionID); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.generateJWT(sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Logout revokes the session behind the token. An invalid token is not an
// error; there is nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.parseJWT(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ValidateToken verifies the token signature and that its session is still
// live. Returns the session id on success.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	sessionID, err := s.parseJWT(token)
	if err != nil {
		return "", err
	}

	exists, err := s.sessions.Exists(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return "", ErrSessionExpired
	}

	return sessionID, nil
}

// checkPassword compares against the bcrypt hash when configured, the plain
// password otherwise.
func (s *AuthService) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

// generateJWT creates a JWT carrying the session id.
func (s *AuthService) generateJWT(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// parseJWT validates the signature and extracts the session id claim.
func (s *AuthService) parseJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("token missing session id")
	}

	return sessionID, nil
}
