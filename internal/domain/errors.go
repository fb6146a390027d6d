package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials é devolvido antes de qualquer chamada de rede
// quando as credenciais da plataforma não estão configuradas
var ErrMissingCredentials = errors.New("credenciais da plataforma de anúncios não configuradas")

// UpstreamError representa uma falha em uma chamada à plataforma:
// resposta não-2xx, timeout ou payload malformado. É recuperado por
// ramo; um ramo degradado nunca derruba os irmãos.
type UpstreamError struct {
	Endpoint   string
	AccountID  string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %s (conta %s) respondeu status %d: %v", e.Endpoint, e.AccountID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s (conta %s) falhou: %v", e.Endpoint, e.AccountID, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError informa se err (ou alguma causa) é um UpstreamError
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
