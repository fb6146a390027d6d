package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator faz a autenticação serviço-a-serviço: um único cliente
// configurado troca id e segredo por um JWT de curta duração. Não há
// usuários, banco nem persistência de tokens.
type Authenticator interface {
	IssueToken(clientID, clientSecret string) (*domain.TokenResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) tokenTTL() time.Duration {
	hours := s.cfg.Auth.TokenTTLHours
	if hours <= 0 {
		hours = 24
	}

	return time.Duration(hours) * time.Hour
}

// IssueToken valida o par id/segredo contra a configuração e emite o
// JWT. O segredo configurado é um hash bcrypt, nunca texto puro.
func (s *Service) IssueToken(clientID, clientSecret string) (*domain.TokenResponse, error) {
	if clientID == "" || clientSecret == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id e client_secret são obrigatórios")
	}

	if clientID != s.cfg.Auth.ClientID {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Cliente desconhecido")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.ClientSecretHash), []byte(clientSecret)); err != nil {
		logrus.WithField("client_id", clientID).Warn("auth: client secret mismatch")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Segredo incorreto")
	}

	ttl := s.tokenTTL()
	claims := domain.Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// ValidateToken confere assinatura e expiração do JWT
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
