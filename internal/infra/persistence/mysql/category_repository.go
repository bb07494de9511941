package mysql

import (
	"context"
	"database/sql"
	"errors"

	domcategory "github.com/primeship/primeship/internal/domain/category"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ domcategory.Repository = (*CategoryRepository)(nil)

func (r *CategoryRepository) Create(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO categories (name, slug, description, parent_id, is_active)
        VALUES (?, ?, ?, ?, ?)
    `, c.Name, c.Slug, c.Description, c.ParentID, c.IsActive)
	if err != nil {
		if isDuplicateKey(err, "slug") {
			return nil, domcategory.ErrCategorySlugExists
		}
		return nil, err
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE categories SET name = ?, slug = ?, description = ?, parent_id = ?, is_active = ?
        WHERE id = ?
    `, c.Name, c.Slug, c.Description, c.ParentID, c.IsActive, c.ID)
	if err != nil {
		if isDuplicateKey(err, "slug") {
			return nil, domcategory.ErrCategorySlugExists
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcategory.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domcategory.Category, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, slug, description, parent_id, is_active
        FROM categories WHERE id = ?
    `, id)

	var c domcategory.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ParentID, &c.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcategory.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domcategory.Category, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, slug, description, parent_id, is_active
        FROM categories WHERE slug = ?
    `, slug)

	var c domcategory.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ParentID, &c.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcategory.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, slug, description, parent_id, is_active
        FROM categories ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domcategory.Category
	for rows.Next() {
		var c domcategory.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ParentID, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
