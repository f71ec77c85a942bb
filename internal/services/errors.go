package services

import "errors"

// Common service errors
var (
	ErrNotFound        = errors.New("registro no encontrado")
	ErrInvalidPassword = errors.New("contraseña inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInvalidState    = errors.New("transición de estado inválida")
	ErrMontoInvalido   = errors.New("el monto debe ser mayor o igual a cero")
	ErrTipoRequerido   = errors.New("el tipo de movimiento es requerido")
	ErrPasswordCorta   = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrRolInvalido     = errors.New("rol de usuario inválido")

	// ErrSubirPDF is surfaced verbatim when the generated report cannot be
	// uploaded; the persist step never runs after it.
	ErrSubirPDF = errors.New("Error al subir el PDF al servidor")
)
