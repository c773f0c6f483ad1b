package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lusotech/storefront/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, description, created_at, updated_at)
        VALUES (:id, :name, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE name = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name, description = :description, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	return err
}

func (r *SQLiteRepository) CountProducts(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM products WHERE category_id = ?", categoryID)
	return count, err
}

func (r *SQLiteRepository) CountSubcategories(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM subcategories WHERE category_id = ?", categoryID)
	return count, err
}

func (r *SQLiteRepository) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
        INSERT INTO subcategories (id, category_id, name, description, created_at, updated_at)
        VALUES (:id, :category_id, :name, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *SQLiteRepository) FindSubcategoryByID(ctx context.Context, id string) (*model.Subcategory, error) {
	var sub model.Subcategory
	query := `
        SELECT s.*, c.name AS category_name
        FROM subcategories s
        LEFT JOIN categories c ON c.id = s.category_id
        WHERE s.id = ? LIMIT 1
    `
	err := r.DB.GetContext(ctx, &sub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SQLiteRepository) FindAllSubcategories(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	var subs []model.Subcategory
	query := `
        SELECT s.*, c.name AS category_name
        FROM subcategories s
        LEFT JOIN categories c ON c.id = s.category_id
    `
	args := []interface{}{}
	if categoryID != "" {
		query += " WHERE s.category_id = ?"
		args = append(args, categoryID)
	}
	query += " ORDER BY s.name ASC"

	if err := r.DB.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SQLiteRepository) UpdateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
        UPDATE subcategories
        SET category_id = :category_id, name = :name, description = :description, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *SQLiteRepository) DeleteSubcategory(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subcategories WHERE id = ?", id)
	return err
}

func (r *SQLiteRepository) CountSubcategoryProducts(ctx context.Context, subcategoryID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM products WHERE subcategory_id = ?", subcategoryID)
	return count, err
}
