package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lusotech/storefront/internal/category"
	"github.com/lusotech/storefront/internal/category/dto"
	"github.com/lusotech/storefront/internal/category/repository"
	"github.com/lusotech/storefront/internal/database"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (category.UseCase, *sqlx.DB) {
	t.Helper()
	db, err := database.NewSQLite(&database.Config{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCategoryUseCase(repository.NewSQLiteRepository(db), logger.NewNop()), db
}

func attachProduct(t *testing.T, db *sqlx.DB, categoryID, subcategoryID *string) {
	t.Helper()
	now := time.Now()
	_, err := db.Exec(
		`INSERT INTO products (id, name, description, price, stock, image_url, category_id, subcategory_id, created_at, updated_at)
         VALUES (?, ?, NULL, 1, 1, NULL, ?, ?, ?, ?)`,
		uuid.New().String(), "Producto", categoryID, subcategoryID, now, now,
	)
	require.NoError(t, err)
}

func TestCreateCategory(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables", Description: "Cables y adaptadores"})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Cables", cat.Name)
	require.NotNil(t, cat.Description)
	assert.Equal(t, "Cables y adaptadores", *cat.Description)
}

func TestCreateCategory_NameRequired(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{})
	assert.ErrorIs(t, err, category.ErrNameRequired)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	assert.ErrorIs(t, err, category.ErrNameTaken)
}

func TestUpdateCategory_KeepOwnName(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)

	// Renaming to its own current name is not a conflict.
	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: "Cables", Description: "nuevo"})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "nuevo", *updated.Description)
}

func TestDeleteCategory_RefusedWithProducts(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)
	attachProduct(t, db, &cat.ID, nil)

	err = uc.DeleteCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, category.ErrHasProducts)
}

func TestDeleteCategory_RefusedWithSubcategories(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)
	_, err = uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: cat.ID})
	require.NoError(t, err)

	err = uc.DeleteCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, category.ErrHasSubcategories)
}

func TestDeleteCategory_Empty(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))

	got, err := uc.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc, _ := newUseCase(t)

	err := uc.DeleteCategory(context.Background(), "missing")
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestCreateSubcategory_ParentValidated(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: "missing"})
	assert.ErrorIs(t, err, category.ErrSubParentNotFound)

	_, err = uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI"})
	assert.ErrorIs(t, err, category.ErrSubParentRequired)
}

func TestCreateSubcategory_CarriesParentName(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)

	sub, err := uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: cat.ID})
	require.NoError(t, err)
	require.NotNil(t, sub.CategoryName)
	assert.Equal(t, "Cables", *sub.CategoryName)
}

func TestListSubcategories_FilteredByParent(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cables, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)
	audio, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Audio"})
	require.NoError(t, err)

	_, err = uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: cables.ID})
	require.NoError(t, err)
	_, err = uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "USB", CategoryID: cables.ID})
	require.NoError(t, err)
	_, err = uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "Parlantes", CategoryID: audio.ID})
	require.NoError(t, err)

	subs, err := uc.ListSubcategories(ctx, cables.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	all, err := uc.ListSubcategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteSubcategory_RefusedWithProducts(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)
	sub, err := uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: cat.ID})
	require.NoError(t, err)
	attachProduct(t, db, &cat.ID, &sub.ID)

	err = uc.DeleteSubcategory(ctx, sub.ID)
	assert.ErrorIs(t, err, category.ErrSubHasProducts)
}

func TestUpdateSubcategory_Reparent(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cables, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Cables"})
	require.NoError(t, err)
	audio, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Audio"})
	require.NoError(t, err)
	sub, err := uc.CreateSubcategory(ctx, &dto.CreateSubcategoryInput{Name: "HDMI", CategoryID: cables.ID})
	require.NoError(t, err)

	updated, err := uc.UpdateSubcategory(ctx, &dto.UpdateSubcategoryInput{ID: sub.ID, Name: "HDMI", CategoryID: audio.ID})
	require.NoError(t, err)
	assert.Equal(t, audio.ID, updated.CategoryID)
	require.NotNil(t, updated.CategoryName)
	assert.Equal(t, "Audio", *updated.CategoryName)
}
