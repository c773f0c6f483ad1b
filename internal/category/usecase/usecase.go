package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lusotech/storefront/internal/category"
	"github.com/lusotech/storefront/internal/category/dto"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/model"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.Logger
}

func NewCategoryUseCase(repo category.Repository, log logger.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, category.ErrNameRequired
	}

	existing, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, category.ErrNameTaken
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:        input.Name,
		Description: optional(input.Description),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}
	if input.Name == "" {
		return nil, category.ErrNameRequired
	}

	if cat.Name != input.Name {
		existing, err := uc.repo.FindByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, category.ErrNameTaken
		}
	}

	cat.Name = input.Name
	cat.Description = optional(input.Description)
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return category.ErrNotFound
	}

	// Deletion is refused while dependents exist; the admin UI surfaces the
	// message and asks the operator to move or delete them first.
	products, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return category.ErrHasProducts
	}

	subs, err := uc.repo.CountSubcategories(ctx, id)
	if err != nil {
		return err
	}
	if subs > 0 {
		return category.ErrHasSubcategories
	}

	return uc.repo.Delete(ctx, id)
}

func (uc *categoryUseCase) CreateSubcategory(ctx context.Context, input *dto.CreateSubcategoryInput) (*model.Subcategory, error) {
	if input.Name == "" {
		return nil, category.ErrSubNameRequired
	}
	if input.CategoryID == "" {
		return nil, category.ErrSubParentRequired
	}

	parent, err := uc.repo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, category.ErrSubParentNotFound
	}

	now := time.Now()
	sub := &model.Subcategory{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: optional(input.Description),
	}

	if err := uc.repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	sub.CategoryName = &parent.Name
	return sub, nil
}

func (uc *categoryUseCase) GetSubcategory(ctx context.Context, id string) (*model.Subcategory, error) {
	return uc.repo.FindSubcategoryByID(ctx, id)
}

func (uc *categoryUseCase) ListSubcategories(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	return uc.repo.FindAllSubcategories(ctx, categoryID)
}

func (uc *categoryUseCase) UpdateSubcategory(ctx context.Context, input *dto.UpdateSubcategoryInput) (*model.Subcategory, error) {
	sub, err := uc.repo.FindSubcategoryByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, category.ErrSubNotFound
	}
	if input.Name == "" {
		return nil, category.ErrSubNameRequired
	}
	if input.CategoryID == "" {
		return nil, category.ErrSubParentRequired
	}

	parent, err := uc.repo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, category.ErrSubParentNotFound
	}

	sub.CategoryID = input.CategoryID
	sub.Name = input.Name
	sub.Description = optional(input.Description)
	sub.UpdatedAt = time.Now()

	if err := uc.repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	sub.CategoryName = &parent.Name
	return sub, nil
}

func (uc *categoryUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	sub, err := uc.repo.FindSubcategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return category.ErrSubNotFound
	}

	products, err := uc.repo.CountSubcategoryProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return category.ErrSubHasProducts
	}

	return uc.repo.DeleteSubcategory(ctx, id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
