package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wifey-app/wifey-api/internal/pkg/env"
)

// CookieName is the cookie the auth gate reads the JWT from.
const CookieName = "wifey_session"

const defaultTTL = 24 * time.Hour

// Claims carried by the session token.
type Claims struct {
	UserID uint   `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(env.GetEnv("JWT_SECRET", "insecure-dev-secret"))
}

// TTL returns the configured session lifetime.
func TTL() time.Duration {
	if h := env.GetEnvInt("JWT_TTL_HOURS", 0); h > 0 {
		return time.Duration(h) * time.Hour
	}
	return defaultTTL
}

// Issue signs a session token for the given user. The jti allows individual
// tokens to be denylisted on logout.
func Issue(userID uint, name, email, role string, now time.Time) (string, *Claims, error) {
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL())),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, claims, nil
}

// Parse verifies signature and expiry and returns the claims.
func Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
