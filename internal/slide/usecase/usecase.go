package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/slide"
	"github.com/lusotech/storefront/internal/slide/dto"
)

type slideUseCase struct {
	repo   slide.Repository
	logger logger.Logger
}

func NewSlideUseCase(repo slide.Repository, log logger.Logger) slide.UseCase {
	return &slideUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *slideUseCase) CreateSlide(ctx context.Context, input *dto.CreateSlideInput) (*model.Slide, error) {
	if input.ImageURL == "" {
		return nil, slide.ErrImageRequired
	}

	now := time.Now()
	s := &model.Slide{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Title:     optional(input.Title),
		Subtitle:  optional(input.Subtitle),
		ImageURL:  input.ImageURL,
		Link:      optional(input.Link),
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *slideUseCase) GetSlide(ctx context.Context, id string) (*model.Slide, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *slideUseCase) ListSlides(ctx context.Context) ([]model.Slide, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *slideUseCase) ActiveSlides(ctx context.Context) ([]model.Slide, error) {
	return uc.repo.FindActive(ctx)
}

func (uc *slideUseCase) UpdateSlide(ctx context.Context, input *dto.UpdateSlideInput) (*model.Slide, error) {
	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, slide.ErrNotFound
	}
	if input.ImageURL == "" {
		return nil, slide.ErrImageRequired
	}

	s.Title = optional(input.Title)
	s.Subtitle = optional(input.Subtitle)
	s.ImageURL = input.ImageURL
	s.Link = optional(input.Link)
	s.SortOrder = input.SortOrder
	s.IsActive = input.IsActive
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *slideUseCase) DeleteSlide(ctx context.Context, id string) error {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return slide.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *slideUseCase) ReorderSlides(ctx context.Context, orders []dto.SlideOrder) error {
	if len(orders) == 0 {
		return slide.ErrEmptyReorder
	}

	err := uc.repo.UpdateSortOrders(ctx, orders)
	if errors.Is(err, sql.ErrNoRows) {
		return slide.ErrUnknownReorderID
	}
	return err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
