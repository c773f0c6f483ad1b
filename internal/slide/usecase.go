package slide

import (
	"context"

	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/slide/dto"
)

type UseCase interface {
	CreateSlide(ctx context.Context, input *dto.CreateSlideInput) (*model.Slide, error)
	GetSlide(ctx context.Context, id string) (*model.Slide, error)
	ListSlides(ctx context.Context) ([]model.Slide, error)
	ActiveSlides(ctx context.Context) ([]model.Slide, error)
	UpdateSlide(ctx context.Context, input *dto.UpdateSlideInput) (*model.Slide, error)
	DeleteSlide(ctx context.Context, id string) error
	ReorderSlides(ctx context.Context, orders []dto.SlideOrder) error
}
