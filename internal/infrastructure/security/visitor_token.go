package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const visitorTokenIssuer = "adaptive-profile"

var ErrInvalidVisitorToken = errors.New("invalid visitor token")

// IssueVisitorToken signs a visitor id into an HS256 token valid for ttl.
func IssueVisitorToken(visitorID, secret string, ttl time.Duration, now time.Time) (string, error) {
	if visitorID == "" {
		return "", errors.New("empty visitor id")
	}
	if secret == "" {
		return "", errors.New("empty visitor secret")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    visitorTokenIssuer,
		Subject:   visitorID,
		IssuedAt:  jwt.NewNumericDate(now.UTC()),
		ExpiresAt: jwt.NewNumericDate(now.UTC().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign visitor token: %w", err)
	}
	return signed, nil
}

// ParseVisitorToken validates a token and returns the visitor id it carries.
func ParseVisitorToken(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidVisitorToken, err)
	}
	if !token.Valid || claims.Issuer != visitorTokenIssuer || !IsULID(claims.Subject) {
		return "", ErrInvalidVisitorToken
	}
	return claims.Subject, nil
}
