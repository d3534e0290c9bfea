package service

import "errors"

var (
	// ErrInvalidInput se devuelve por cantidad o rango de respuestas invalido.
	// Es recuperable: el llamador debe corregir la entrada.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownType indica una tabla estatica incompleta. No depende del usuario.
	ErrUnknownType = errors.New("unknown personality type")
)
