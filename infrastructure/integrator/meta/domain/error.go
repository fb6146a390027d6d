package metadomain

// Códigos que a Graph API usa para sinalizar problemas de token.
// O código 190 é o genérico de token expirado; os subcódigos cobrem
// senha alterada, sessão expirada e sessão invalidada.
const (
	errCodeTokenExpired = 190

	errSubcodePasswordChanged    = 460
	errSubcodeSessionExpired     = 463
	errSubcodeSessionInvalidated = 467
)

// ErrorResponse é o envelope de erro das respostas da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired informa se o erro indica token expirado ou sessão
// invalidada, os casos em que vale tentar renovar o token
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == errCodeTokenExpired {
		return true
	}

	if e.Error.Type != "OAuthException" {
		return false
	}

	switch e.Error.ErrorSubcode {
	case errSubcodePasswordChanged, errSubcodeSessionExpired, errSubcodeSessionInvalidated:
		return true
	}

	return false
}
