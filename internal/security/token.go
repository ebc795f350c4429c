package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// WebhookClaims are the claims carried by webhook delivery tokens. The data
// store signs deliveries with a shared secret so the webhook endpoint can
// reject forged payloads.
type WebhookClaims struct {
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateWebhookToken(ttl time.Duration) (string, error)
	ValidateWebhookToken(tokenString string) error
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{secret: []byte(secret)}
}

func (m *tokenManager) GenerateWebhookToken(ttl time.Duration) (string, error) {
	claims := WebhookClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bak-store",
			Audience:  jwt.ClaimStrings{"webhook"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateWebhookToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &WebhookClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
