package cart

import (
	"context"

	domcart "github.com/primeship/primeship/internal/domain/cart"
	domproduct "github.com/primeship/primeship/internal/domain/product"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domproduct.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error)
}

type Service struct {
	cartRepo    domcart.Repository
	productRepo ProductRepository
}

func NewService(cartRepo domcart.Repository, productRepo ProductRepository) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// SetItem creates or replaces a cart line with the given quantity.
// Lines always hold the requested amount, so repeating a request is
// harmless.
func (s *Service) SetItem(ctx context.Context, userID, productID, quantity int64) (*domcart.Cart, error) {
	if quantity < 1 || quantity > domcart.MaxItemQuantity {
		return nil, domcart.ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domproduct.ErrProductNotFound
	}
	if p.Stock < quantity {
		return nil, domproduct.ErrOutOfStock
	}

	if err := s.cartRepo.SetItem(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID int64) (*domcart.Cart, error) {
	if err := s.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// ApplyPromo validates and stores the promo code; the discount shows up
// in the recomputed totals.
func (s *Service) ApplyPromo(ctx context.Context, userID int64, code string) (*domcart.Cart, error) {
	if !domcart.ValidPromo(code) {
		return nil, domcart.ErrInvalidPromo
	}
	if err := s.cartRepo.SetPromo(ctx, userID, code); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.cartRepo.Clear(ctx, userID)
}

// GetCart resolves the stored lines against the current catalog at the
// discounted price and recomputes the totals. Lines whose product has
// been delisted drop out silently.
func (s *Service) GetCart(ctx context.Context, userID int64) (*domcart.Cart, error) {
	items, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	promo, err := s.cartRepo.GetPromo(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &domcart.Cart{
		UserID:    userID,
		Items:     []domcart.DetailedItem{},
		PromoCode: promo,
	}
	if len(items) == 0 {
		cart.Totals = domcart.ComputeTotals(nil, promo)
		return cart, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	productMap := make(map[int64]*domproduct.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	for _, item := range items {
		p, ok := productMap[item.ProductID]
		if !ok || !p.IsActive {
			continue
		}
		cart.Items = append(cart.Items, domcart.DetailedItem{
			Item:        item,
			ProductName: p.Name,
			SellerID:    p.SellerID,
			UnitPrice:   p.DiscountedPrice(),
		})
	}

	cart.Totals = domcart.ComputeTotals(cart.Items, promo)
	return cart, nil
}
