package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lusotech/storefront/internal/cache"
	"github.com/lusotech/storefront/internal/category"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/product"
	"github.com/lusotech/storefront/internal/product/dto"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type productUseCase struct {
	repo    product.Repository
	catRepo category.Repository
	cache   *cache.RedisClient
	logger  logger.Logger
}

// NewProductUseCase wires the catalog use case. cache may be nil, in which
// case list results always come straight from the database.
func NewProductUseCase(repo product.Repository, catRepo category.Repository, cache *cache.RedisClient, log logger.Logger) product.UseCase {
	return &productUseCase{
		repo:    repo,
		catRepo: catRepo,
		cache:   cache,
		logger:  log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := uc.validate(ctx, input.Name, input.Price, input.Stock, input.CategoryID, input.SubcategoryID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now()

	p := &model.Product{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:          input.Name,
		Description:   optional(input.Description),
		Price:         input.Price,
		Stock:         input.Stock,
		ImageURL:      optional(input.ImageURL),
		CategoryID:    optional(input.CategoryID),
		SubcategoryID: optional(input.SubcategoryID),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey := ""
	if uc.cache != nil {
		var err error
		cacheKey, err = listCacheKey(filters)
		if err == nil {
			val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
			if err == nil {
				var cached struct {
					Products []model.Product
					Count    int
				}
				if err := json.Unmarshal([]byte(val), &cached); err == nil {
					return cached.Products, cached.Count, nil
				}
			}
		}
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if uc.cache != nil && cacheKey != "" {
		payload := struct {
			Products []model.Product
			Count    int
		}{Products: products, Count: count}
		if data, err := json.Marshal(payload); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return uc.repo.FindFeatured(ctx, limit)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if err := uc.validate(ctx, input.Name, input.Price, input.Stock, input.CategoryID, input.SubcategoryID); err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Description = optional(input.Description)
	p.Price = input.Price
	p.Stock = input.Stock
	p.ImageURL = optional(input.ImageURL)
	p.CategoryID = optional(input.CategoryID)
	p.SubcategoryID = optional(input.SubcategoryID)
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already gone
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())

	return nil
}

func (uc *productUseCase) validate(ctx context.Context, name string, price float64, stock int, categoryID, subcategoryID string) error {
	if name == "" {
		return product.ErrInvalidName
	}
	if price < 0 {
		return product.ErrInvalidPrice
	}
	if stock < 0 {
		return product.ErrInvalidStock
	}
	if categoryID != "" {
		cat, err := uc.catRepo.FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return product.ErrCategoryNotFound
		}
	}
	if subcategoryID != "" {
		sub, err := uc.catRepo.FindSubcategoryByID(ctx, subcategoryID)
		if err != nil {
			return err
		}
		if sub == nil {
			return product.ErrSubcategoryNotFound
		}
	}
	return nil
}

func listCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	// A failed delete leaves stale pages served until the TTL runs out, so it
	// has to be visible in the logs.
	if err := uc.cache.Client.Del(ctx, keys...).Err(); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
