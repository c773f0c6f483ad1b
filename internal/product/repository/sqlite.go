package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/product/dto"
)

const selectColumns = `
    p.id, p.name, p.description, p.price, p.stock, p.image_url,
    p.category_id, p.subcategory_id, p.created_at, p.updated_at,
    c.name AS category_name, s.name AS subcategory_name
`

const fromJoined = `
    FROM products p
    LEFT JOIN categories c ON c.id = p.category_id
    LEFT JOIN subcategories s ON s.id = p.subcategory_id
`

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, description, price, stock, image_url,
            category_id, subcategory_id, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :price, :stock, :image_url,
            :category_id, :subcategory_id, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := "SELECT " + selectColumns + fromJoined + " WHERE p.id = ? LIMIT 1"
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != "" {
		conditions = append(conditions, "p.category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.SubcategoryID != "" {
		conditions = append(conditions, "p.subcategory_id = :subcategory_id")
		args["subcategory_id"] = f.SubcategoryID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.name LIKE :search OR p.description LIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}
	switch f.StockFilter {
	case "in_stock":
		conditions = append(conditions, "p.stock > 0")
	case "out_of_stock":
		conditions = append(conditions, "p.stock = 0")
	case "low_stock":
		conditions = append(conditions, "p.stock > 0 AND p.stock <= 5")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products p" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	if rows.Next() {
		rows.Scan(&count)
	}
	// Release the count query's connection before preparing the page query;
	// with MaxOpenConns=1 holding it open deadlocks the pool.
	rows.Close()

	// Whitelist sortable fields to keep user input out of the ORDER BY.
	orderBy := "p.created_at DESC"
	switch f.SortBy {
	case "name", "price", "stock", "created_at":
		orderBy = "p." + f.SortBy
		if strings.EqualFold(f.SortOrder, "asc") {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := "SELECT " + selectColumns + fromJoined + whereClause + " ORDER BY " + orderBy

	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, args)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *SQLiteRepository) FindFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	query := "SELECT " + selectColumns + fromJoined + `
        WHERE p.stock > 0
        ORDER BY p.created_at DESC
        LIMIT ?
    `
	err := r.DB.SelectContext(ctx, &products, query, limit)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            price = :price,
            stock = :stock,
            image_url = :image_url,
            category_id = :category_id,
            subcategory_id = :subcategory_id,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}
