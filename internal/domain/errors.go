package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Específicos del portal de empleos.
	ErrAlreadyApplied   = errors.New("ya existe una postulación para este aviso")
	ErrNotJobSeeker     = errors.New("el usuario no tiene perfil de candidato")
	ErrAlreadyOnboarded = errors.New("el usuario ya completó el onboarding")
	ErrInvalidSignature = errors.New("firma del webhook inválida")
)
