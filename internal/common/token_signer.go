package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionToken is what a validated login token carries
type SessionToken struct {
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenSigner issues and validates the HS256 session tokens handed out at login
type TokenSigner struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenSigner creates a signer. A zero ttl means 12 hours.
func NewTokenSigner(secretKey []byte, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenSigner{secretKey: secretKey, ttl: ttl}
}

// Issue signs a token for username with the given role
func (s *TokenSigner) Issue(username, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"jti":  uuid.New().String(),
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a token and checks signature and expiry
func (s *TokenSigner) Validate(tokenString string) (*SessionToken, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, errors.New("missing or invalid sub claim")
	}

	role, _ := claims["role"].(string)

	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("missing or invalid exp claim")
	}

	return &SessionToken{
		Username:  username,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}
