package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	domproduct "github.com/primeship/primeship/internal/domain/product"
)

const productColumns = `id, name, sku, slug, description, category_id, category_name, seller_id,
        price, discount_percent, stock, rating, featured, is_active, images, meta_title, meta_description, created_at`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ domproduct.Repository = (*ProductRepository)(nil)

func isDuplicateKey(err error, key string) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 && strings.Contains(mysqlErr.Message, key)
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO products (name, sku, slug, description, category_id, category_name, seller_id,
            price, discount_percent, stock, rating, featured, is_active, images, meta_title, meta_description, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, p.Name, p.SKU, p.Slug, p.Description, p.CategoryID, p.CategoryName, p.SellerID,
		p.Price, p.DiscountPercent, p.Stock, p.Rating, p.Featured, p.IsActive, images, p.MetaTitle, p.MetaDescription, p.CreatedAt)
	if err != nil {
		switch {
		case isDuplicateKey(err, "sku"):
			return nil, domproduct.ErrSKUExists
		case isDuplicateKey(err, "slug"):
			return nil, domproduct.ErrSlugExists
		}
		return nil, err
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET name = ?, sku = ?, slug = ?, description = ?, category_id = ?, category_name = ?,
            seller_id = ?, price = ?, discount_percent = ?, stock = ?, rating = ?, featured = ?, is_active = ?,
            images = ?, meta_title = ?, meta_description = ?
        WHERE id = ?
    `, p.Name, p.SKU, p.Slug, p.Description, p.CategoryID, p.CategoryName,
		p.SellerID, p.Price, p.DiscountPercent, p.Stock, p.Rating, p.Featured, p.IsActive,
		images, p.MetaTitle, p.MetaDescription, p.ID)
	if err != nil {
		switch {
		case isDuplicateKey(err, "sku"):
			return nil, domproduct.ErrSKUExists
		case isDuplicateKey(err, "slug"):
			return nil, domproduct.ErrSlugExists
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*domproduct.Product, error) {
	var p domproduct.Product
	var images []byte
	if err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Slug, &p.Description, &p.CategoryID, &p.CategoryName,
		&p.SellerID, &p.Price, &p.DiscountPercent, &p.Stock, &p.Rating, &p.Featured, &p.IsActive,
		&images, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domproduct.ErrProductNotFound
	}
	return p, err
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE slug = ?`, slug)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domproduct.ErrProductNotFound
	}
	return p, err
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error) {
	if len(ids) == 0 {
		return []*domproduct.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products
        WHERE id IN (?` + strings.Repeat(",?", len(ids)-1) + `)`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE category_id = ?`, categoryID).Scan(&n)
	return n, err
}

func (r *ProductRepository) DecrementStock(ctx context.Context, id int64, qty int64) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?
    `, qty, id, qty)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domproduct.ErrOutOfStock
	}
	return nil
}

func (r *ProductRepository) RestoreStock(ctx context.Context, id int64, qty int64) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET stock = stock + ? WHERE id = ?
    `, qty, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}
