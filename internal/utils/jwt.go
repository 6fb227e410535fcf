package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the logged-in account. The account number is the login
// identity and the role drives the dashboard the client routes to.
type Claims struct {
	AccountNumber string `json:"accountNumber"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

// TokenSource mints and validates session tokens.
type TokenSource struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenSource(secret string, ttl time.Duration) *TokenSource {
	return &TokenSource{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed JWT for an account.
func (t *TokenSource) GenerateToken(accountNumber, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountNumber: accountNumber,
		Role:          role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateToken checks a token and returns its claims.
func (t *TokenSource) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
