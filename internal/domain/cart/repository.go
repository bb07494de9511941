package cart

import "context"

type Repository interface {
	// SetItem creates or replaces the line for the product with the given
	// quantity.
	SetItem(ctx context.Context, userID, productID, quantity int64) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ListItems(ctx context.Context, userID int64) ([]Item, error)
	SetPromo(ctx context.Context, userID int64, code string) error
	GetPromo(ctx context.Context, userID int64) (string, error)
	Clear(ctx context.Context, userID int64) error
}
