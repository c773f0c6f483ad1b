package category

import "errors"

var (
	ErrNotFound          = errors.New("categoría no encontrada")
	ErrNameRequired      = errors.New("el nombre de la categoría es requerido")
	ErrNameTaken         = errors.New("ya existe una categoría con ese nombre")
	ErrHasProducts       = errors.New("no se puede eliminar: la categoría tiene productos asociados")
	ErrHasSubcategories  = errors.New("no se puede eliminar: la categoría tiene subcategorías asociadas")
	ErrSubNotFound       = errors.New("subcategoría no encontrada")
	ErrSubNameRequired   = errors.New("el nombre de la subcategoría es requerido")
	ErrSubParentRequired = errors.New("la subcategoría requiere una categoría")
	ErrSubHasProducts    = errors.New("no se puede eliminar: la subcategoría tiene productos asociados")
	ErrSubParentNotFound = errors.New("la categoría padre no existe")
)
