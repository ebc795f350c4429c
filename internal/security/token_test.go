package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rubentalstra/BAK/internal/security"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewTokenManager("test-secret")

	token, err := manager.GenerateWebhookToken(time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, manager.ValidateWebhookToken(token))
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := security.NewTokenManager("test-secret")
	other := security.NewTokenManager("other-secret")

	token, err := other.GenerateWebhookToken(time.Minute)
	assert.NoError(t, err)

	err = manager.ValidateWebhookToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	manager := security.NewTokenManager("test-secret")

	token, err := manager.GenerateWebhookToken(-time.Minute)
	assert.NoError(t, err)

	err = manager.ValidateWebhookToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := security.NewTokenManager("test-secret")

	assert.ErrorIs(t, manager.ValidateWebhookToken(""), security.ErrInvalidToken)
	assert.ErrorIs(t, manager.ValidateWebhookToken("not.a.jwt"), security.ErrInvalidToken)
}
