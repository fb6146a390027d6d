package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-inventory-api/pkg/apiErrors"
)

type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Token troca o par client_id/client_secret por um JWT de serviço
func Token(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.IssueToken(req.ClientID, req.ClientSecret)
		if err != nil {
			handleTokenError(w, req.ClientID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(token); err != nil {
			logrus.WithError(err).Error("auth: failed to encode token response")
		}
	}
}

func handleTokenError(w http.ResponseWriter, clientID string, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		// Credenciais erradas e dados faltando viram respostas limpas,
		// sem vazar o motivo exato para o chamador
		if authenticating.IsCredentialsError(err) {
			apiErrors.WriteError(w, authErr.Code, "Credenciais inválidas", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"error":     err.Error(),
		}).Error("auth: token issuance failed")
		apiErrors.WriteError(w, authErr.Code, "Erro ao gerar token", nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"error":     err.Error(),
	}).Error("auth: unexpected error issuing token")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
