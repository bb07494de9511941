package checkout

import (
	"context"
	"strings"

	domcart "github.com/primeship/primeship/internal/domain/cart"
	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*domcart.Cart, error)
	Clear(ctx context.Context, userID int64) error
}

type StockAdjuster interface {
	DecrementStock(ctx context.Context, id int64, qty int64) error
	RestoreStock(ctx context.Context, id int64, qty int64) error
}

type Service struct {
	carts     CartService
	orderRepo domorder.Repository
	stock     StockAdjuster
}

func NewService(carts CartService, orderRepo domorder.Repository, stock StockAdjuster) *Service {
	return &Service{
		carts:     carts,
		orderRepo: orderRepo,
		stock:     stock,
	}
}

type Input struct {
	CustomerName    string
	Phone           string
	ShippingAddress string
	PaymentMethod   domorder.PaymentMethod
}

// Checkout turns the user's cart into a pending order: it snapshots
// names and unit prices, decrements stock and clears the cart. Totals
// come from the cart so the order charges exactly what the cart showed.
func (s *Service) Checkout(ctx context.Context, userID int64, in Input) (*domorder.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	if in.CustomerName == "" || in.Phone == "" || in.ShippingAddress == "" {
		return nil, domorder.ErrCheckoutValidation
	}
	if !in.PaymentMethod.IsValid() {
		return nil, domorder.ErrInvalidPayment
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domorder.ErrEmptyOrderItems
	}

	// Decrement line by line; when any line fails, hand back what the
	// earlier lines already took so a rejected checkout never leaks stock.
	for i, item := range cart.Items {
		if err := s.stock.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.restoreStock(ctx, cart.Items[:i])
			if err == domproduct.ErrProductNotFound {
				return nil, domorder.ErrCheckoutValidation
			}
			return nil, err
		}
	}

	items := make([]domorder.Item, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, domorder.Item{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.ProductName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.orderRepo.Create(ctx, &domorder.Order{
		UserID:          userID,
		CustomerName:    in.CustomerName,
		Phone:           in.Phone,
		ShippingAddress: in.ShippingAddress,
		Status:          domorder.StatusPending,
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        cart.Totals.Subtotal,
		Shipping:        cart.Totals.Shipping,
		Tax:             cart.Totals.Tax,
		Discount:        cart.Totals.Discount,
		TotalAmount:     cart.Totals.Total,
		Items:           items,
	})
	if err != nil {
		s.restoreStock(ctx, cart.Items)
		return nil, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	return order, nil
}

// restoreStock is best effort: a line whose product vanished mid-checkout
// has nothing left to restore.
func (s *Service) restoreStock(ctx context.Context, items []domcart.DetailedItem) {
	for _, item := range items {
		_ = s.stock.RestoreStock(ctx, item.ProductID, item.Quantity)
	}
}
