package errors

import "fmt"

var (
	// JWT e tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenIsNotRefresh    = fmt.Errorf("o token não é um refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("o token não é um access token")

	// Autorização
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciais inválidas")
	ErrUnauthorized       = fmt.Errorf("não autorizado")
	ErrForbidden          = fmt.Errorf("acesso negado")

	// Contexto
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID não encontrado no contexto da requisição")
	ErrUserNotFound            = fmt.Errorf("usuário não encontrado")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// HttpError carrega o código HTTP junto com a mensagem destinada ao cliente.
// O erro original (Err) aparece só nos logs, nunca na resposta.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

// NewHttpErrorWithDetails é usado quando o corpo da resposta precisa carregar
// uma estrutura (ex.: resultado de validação da seleção).
func NewHttpErrorWithDetails(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
