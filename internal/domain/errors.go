package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrRegistrationNotFound = errors.New("registro no encontrado")
	ErrTransactionNotFound  = errors.New("transacción no encontrada")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidUnitsPerBox   = errors.New("unidades por caja inválidas")
	ErrUpstream             = errors.New("fallo del almacenamiento remoto")
)
