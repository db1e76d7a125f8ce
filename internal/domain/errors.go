package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Conflicto y no-encontrado son terminales: el servicio no reintenta,
// los propaga para que la capa HTTP los traduzca a estado.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrCustomerAlreadyExists = errors.New("ya existe un cliente con ese documento, email o registro estatal")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
)
