package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
)

const tokenTTL = time.Hour

type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) Issue(userID uuid.UUID, role model.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns the caller's identity. Any
// parse or signature failure maps to ErrAuthentication so callers never
// have to tell jwt library errors apart.
func (m *TokenManager) Verify(token string) (uuid.UUID, model.Role, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, "", fmt.Errorf("auth: invalid token: %w", errdefs.ErrAuthentication)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("auth: invalid subject %q: %w", claims.Subject, errdefs.ErrAuthentication)
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("auth: invalid role %q: %w", claims.Role, errdefs.ErrAuthentication)
	}
	return userID, claims.Role, nil
}
