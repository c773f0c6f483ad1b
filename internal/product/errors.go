package product

import "errors"

var (
	ErrNotFound            = errors.New("producto no encontrado")
	ErrInvalidName         = errors.New("el nombre del producto es requerido")
	ErrInvalidPrice        = errors.New("el precio debe ser mayor o igual a 0")
	ErrInvalidStock        = errors.New("el stock debe ser mayor o igual a 0")
	ErrCategoryNotFound    = errors.New("la categoría no existe")
	ErrSubcategoryNotFound = errors.New("la subcategoría no existe")
)
