package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRequestID gera um ID curto para correlacionar logs de uma requisição
func GenerateRequestID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
