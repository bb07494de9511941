package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domorder "github.com/primeship/primeship/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ domorder.Repository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (_ *domorder.Order, retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := tx.ExecContext(ctx, `
        INSERT INTO orders (user_id, customer_name, phone, shipping_address, status, payment_method,
            subtotal, shipping, tax, discount, total_amount, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, o.UserID, o.CustomerName, o.Phone, o.ShippingAddress, o.Status, o.PaymentMethod,
		o.Subtotal, o.Shipping, o.Tax, o.Discount, o.TotalAmount, createdAt)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	orderID, _ := res.LastInsertId()

	orderNo := o.OrderNo
	if orderNo == "" {
		orderNo = domorder.FormatOrderNo(orderID)
	}
	if _, err = tx.ExecContext(ctx, `UPDATE orders SET order_no = ? WHERE id = ?`, orderNo, orderID); err != nil {
		retErr = err
		return nil, retErr
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, product_id, seller_id, product_name, unit_price, quantity)
            VALUES (?, ?, ?, ?, ?, ?)
        `, orderID, item.ProductID, item.SellerID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			retErr = err
			return nil, retErr
		}
	}

	if err = tx.Commit(); err != nil {
		retErr = err
		return nil, retErr
	}

	return r.GetByID(ctx, orderID)
}

const orderColumns = `id, order_no, user_id, customer_name, phone, shipping_address, status, payment_method,
        subtotal, shipping, tax, discount, total_amount, created_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domorder.Order, error) {
	var o domorder.Order
	if err := row.Scan(&o.ID, &o.OrderNo, &o.UserID, &o.CustomerName, &o.Phone, &o.ShippingAddress,
		&o.Status, &o.PaymentMethod, &o.Subtotal, &o.Shipping, &o.Tax, &o.Discount, &o.TotalAmount, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id ASC`)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domorder.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]*domorder.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domorder.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		items, err := r.listOrderItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	items, err := r.listOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domorder.Status) (*domorder.Order, error) {
	if _, err := r.db.ExecContext(ctx, `
        UPDATE orders SET status = ? WHERE id = ?
    `, status, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) listOrderItems(ctx context.Context, orderID int64) ([]domorder.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, order_id, product_id, seller_id, product_name, unit_price, quantity
        FROM order_items WHERE order_id = ? ORDER BY id ASC
    `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domorder.Item
	for rows.Next() {
		var item domorder.Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.SellerID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
