package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/authenticating"
)

func newAuthService(t *testing.T) (authenticating.Authenticator, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-teste"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:           "chave-de-assinatura",
			ClientID:         "cliente-teste",
			ClientSecretHash: string(hash),
			TokenTTLHours:    1,
		},
	}

	service := authenticating.NewService(cfg)

	token, err := service.IssueToken("cliente-teste", "segredo-teste")
	require.NoError(t, err)

	return service, token.AccessToken
}

func TestAuthMiddleware(t *testing.T) {
	service, accessToken := newAuthService(t)

	var gotClaims *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = r.Context().Value(ContextKeyClient).(*domain.Claims)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(service)(next)

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "rota aberta dispensa token",
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "emissão de token é rota aberta",
			path:       "/v1/token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "rota protegida sem header",
			path:       "/v1/adAccount/123/inventory/active",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "header sem prefixo Bearer",
			path:       "/v1/adAccount/123/inventory/active",
			authHeader: accessToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token inválido",
			path:       "/v1/adAccount/123/inventory/active",
			authHeader: "Bearer token-qualquer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token válido",
			path:       "/v1/adAccount/123/inventory/active",
			authHeader: "Bearer " + accessToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK && tt.authHeader != "" {
				require.NotNil(t, gotClaims)
				assert.Equal(t, "cliente-teste", gotClaims.ClientID)
			}
		})
	}
}
