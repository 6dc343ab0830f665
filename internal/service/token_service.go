package service

import (
	"fmt"
	"time"

	"bistro-api/internal/domain"
	"bistro-api/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the wire shape of an issued token
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenService implements TokenService with HMAC-signed JWTs
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. The secret is process-wide
// configuration, loaded once at startup and never rotated mid-process.
func NewTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs identity claims for the given subject email
func (s *JWTTokenService) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.NewValidationError("Email is required", nil)
	}

	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.NewInternalError("Failed to sign token", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the original claims
func (s *JWTTokenService) Verify(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, errors.NewAuthenticationError("Invalid or expired token")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errors.NewAuthenticationError("Invalid token claims")
	}

	if claims.Email == "" {
		return nil, errors.NewAuthenticationError("Invalid token: missing email claim")
	}

	result := &domain.Claims{Email: claims.Email}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
