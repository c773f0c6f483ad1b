package user

import "errors"

var (
	ErrNotFound           = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailRequired      = errors.New("el email es requerido")
	ErrEmailTaken         = errors.New("ya existe un usuario con ese email")
	ErrNameRequired       = errors.New("el nombre es requerido")
	ErrPasswordRequired   = errors.New("la contraseña es requerida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrSelfDelete         = errors.New("no puedes eliminar tu propio usuario")
)
