package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*Product, error)

	// List returns the full collection in insertion order; callers narrow
	// it with the listing pipeline.
	List(ctx context.Context) ([]*Product, error)

	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// DecrementStock fails with ErrOutOfStock when fewer than qty units
	// remain, leaving the stock untouched.
	DecrementStock(ctx context.Context, id int64, qty int64) error

	// RestoreStock returns qty units, undoing a decrement when the
	// surrounding operation fails partway.
	RestoreStock(ctx context.Context, id int64, qty int64) error
}
