package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-do-cliente"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:           "chave-de-assinatura",
			ClientID:         "painel-interno",
			ClientSecretHash: string(hash),
			TokenTTLHours:    1,
		},
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	service := NewService(newTestConfig(t))

	token, err := service.IssueToken("painel-interno", "segredo-do-cliente")

	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := service.ValidateToken(token.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, "painel-interno", claims.ClientID)
}

func TestIssueToken_InvalidCredentials(t *testing.T) {
	service := NewService(newTestConfig(t))

	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		wantErr      error
	}{
		{"Cliente desconhecido", "outro-cliente", "segredo-do-cliente", ErrInvalidCredentials},
		{"Segredo errado", "painel-interno", "chute", ErrInvalidCredentials},
		{"Sem client_id", "", "segredo-do-cliente", ErrMissingRequiredData},
		{"Sem segredo", "painel-interno", "", ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.IssueToken(tt.clientID, tt.clientSecret)

			assert.Nil(t, token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsCredentialsError(err))
		})
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	service := NewService(newTestConfig(t))

	claims, err := service.ValidateToken("nem-de-longe-um-jwt")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSigningKey(t *testing.T) {
	issuer := NewService(newTestConfig(t))

	token, err := issuer.IssueToken("painel-interno", "segredo-do-cliente")
	require.NoError(t, err)

	otherCfg := newTestConfig(t)
	otherCfg.Auth.Secret = "outra-chave"
	validator := NewService(otherCfg)

	claims, err := validator.ValidateToken(token.AccessToken)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
