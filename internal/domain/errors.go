package domain

import (
	"errors"
	"fmt"
)

// Taxonomía de errores de dominio (sin dependencias externas). La capa HTTP
// mapea cada familia a su código de estado: Validation → 400, Unauthorized → 401,
// Forbidden → 403, NotFound → 404, Conflict → 409; todo lo demás → 500.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores específicos; envuelven la familia para que errors.Is resuelva el estado HTTP.
var (
	ErrUserNotFound       = fmt.Errorf("%w: usuario", ErrNotFound)
	ErrDishNotFound       = fmt.Errorf("%w: plato", ErrNotFound)
	ErrUsernameExists     = fmt.Errorf("%w: el username ya está registrado", ErrConflict)
	ErrEmailExists        = fmt.Errorf("%w: el email ya está registrado", ErrConflict)
	ErrNIFExists          = fmt.Errorf("%w: el NIF ya está registrado", ErrConflict)
	ErrBadCredentials     = fmt.Errorf("%w: credenciales inválidas", ErrUnauthorized)
	ErrAccountInactive    = fmt.Errorf("%w: la cuenta no está activa", ErrForbidden)
	ErrInvalidAdminSecret = fmt.Errorf("%w: secreto de administrador inválido", ErrForbidden)
	ErrAdminApproval      = fmt.Errorf("%w: las cuentas ADMIN no se aprueban ni modifican por esta vía", ErrForbidden)
	ErrUnknownDishCode    = fmt.Errorf("%w: código de plato desconocido", ErrValidation)
)
