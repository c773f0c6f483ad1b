package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/slide/dto"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Slide) error {
	query := `
        INSERT INTO slides (id, title, subtitle, image_url, link, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :title, :subtitle, :image_url, :link, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Slide, error) {
	var slide model.Slide
	query := `SELECT * FROM slides WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &slide, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &slide, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Slide, error) {
	var slides []model.Slide
	query := `SELECT * FROM slides ORDER BY sort_order ASC, created_at ASC`
	if err := r.DB.SelectContext(ctx, &slides, query); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *SQLiteRepository) FindActive(ctx context.Context) ([]model.Slide, error) {
	var slides []model.Slide
	query := `SELECT * FROM slides WHERE is_active = 1 ORDER BY sort_order ASC, created_at ASC`
	if err := r.DB.SelectContext(ctx, &slides, query); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, s *model.Slide) error {
	query := `
        UPDATE slides
        SET title = :title,
            subtitle = :subtitle,
            image_url = :image_url,
            link = :link,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM slides WHERE id = ?", id)
	return err
}

// UpdateSortOrders applies a reorder in a single transaction so a partial
// failure never leaves the carousel half-shuffled.
func (r *SQLiteRepository) UpdateSortOrders(ctx context.Context, orders []dto.SlideOrder) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for _, o := range orders {
		res, err := tx.ExecContext(ctx,
			"UPDATE slides SET sort_order = ?, updated_at = ? WHERE id = ?",
			o.SortOrder, now, o.ID,
		)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return sql.ErrNoRows
		}
	}

	return tx.Commit()
}
