package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenInvalid      = errors.New("token invalid")
)

// TokenManager issues and validates HS256 bearer tokens. Tokens are
// self-contained: validity depends only on the signature and expiry, so
// rotating the secret invalidates everything outstanding.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret string, lifetime time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token for subject expiring lifetime from now.
func (m *TokenManager) Issue(subject string) (string, time.Time, error) {
	exp := time.Now().Add(m.lifetime)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Validate checks signature and expiry and returns the token's subject.
// Failures map to ErrTokenMalformed, ErrTokenExpired, ErrTokenBadSignature
// or ErrTokenInvalid; callers may treat them all as one unauthorized case.
func (m *TokenManager) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return m.secret, nil
	})
	switch {
	case err == nil && tkn.Valid:
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrTokenBadSignature
	default:
		return "", ErrTokenInvalid
	}
}
