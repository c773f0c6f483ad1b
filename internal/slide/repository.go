package slide

import (
	"context"

	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/slide/dto"
)

type Repository interface {
	Create(ctx context.Context, slide *model.Slide) error
	FindByID(ctx context.Context, id string) (*model.Slide, error)
	FindAll(ctx context.Context) ([]model.Slide, error)
	FindActive(ctx context.Context) ([]model.Slide, error)
	Update(ctx context.Context, slide *model.Slide) error
	Delete(ctx context.Context, id string) error
	UpdateSortOrders(ctx context.Context, orders []dto.SlideOrder) error
}
