package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("transição de status não permitida")
	ErrRecordLocked       = errors.New("nota recebida está travada")
	ErrMasterUser         = errors.New("o usuário master não pode ser excluído")
)
