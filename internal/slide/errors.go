package slide

import "errors"

var (
	ErrNotFound         = errors.New("slide no encontrado")
	ErrImageRequired    = errors.New("la imagen del slide es requerida")
	ErrEmptyReorder     = errors.New("la lista de orden no puede estar vacía")
	ErrUnknownReorderID = errors.New("la lista de orden contiene un slide inexistente")
)
