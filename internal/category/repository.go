package category

import (
	"context"

	"github.com/lusotech/storefront/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	CountProducts(ctx context.Context, categoryID string) (int, error)
	CountSubcategories(ctx context.Context, categoryID string) (int, error)

	CreateSubcategory(ctx context.Context, sub *model.Subcategory) error
	FindSubcategoryByID(ctx context.Context, id string) (*model.Subcategory, error)
	FindAllSubcategories(ctx context.Context, categoryID string) ([]model.Subcategory, error)
	UpdateSubcategory(ctx context.Context, sub *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error
	CountSubcategoryProducts(ctx context.Context, subcategoryID string) (int, error)
}
