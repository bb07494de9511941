package mysql

import (
	"context"
	"database/sql"

	domcart "github.com/primeship/primeship/internal/domain/cart"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

var _ domcart.Repository = (*CartRepository)(nil)

func (r *CartRepository) SetItem(ctx context.Context, userID, productID, quantity int64) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES (?, ?, ?)
        ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)
    `, userID, productID, quantity)
	return err
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	res, err := r.db.ExecContext(ctx, `
        DELETE FROM cart_items WHERE user_id = ? AND product_id = ?
    `, userID, productID)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcart.ErrItemNotFound
	}
	return nil
}

func (r *CartRepository) ListItems(ctx context.Context, userID int64) ([]domcart.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT product_id, quantity
        FROM cart_items
        WHERE user_id = ?
        ORDER BY id ASC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domcart.Item
	for rows.Next() {
		var item domcart.Item
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) SetPromo(ctx context.Context, userID int64, code string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cart_promos (user_id, promo_code)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE promo_code = VALUES(promo_code)
    `, userID, code)
	return err
}

func (r *CartRepository) GetPromo(ctx context.Context, userID int64) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx, `
        SELECT promo_code FROM cart_promos WHERE user_id = ?
    `, userID).Scan(&code)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return code, err
}

func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_promos WHERE user_id = ?`, userID)
	return err
}
