package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de serviço. Não há usuários nem
// persistência de credenciais; a autenticação é de serviço para
// serviço, com um único cliente configurado.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
