package seller

import (
	"context"
	"sort"

	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*domproduct.Product, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]*domorder.Order, error)
}

type Service struct {
	products ProductRepository
	orders   OrderRepository
}

func NewService(products ProductRepository, orders OrderRepository) *Service {
	return &Service{products: products, orders: orders}
}

type Dashboard struct {
	Revenue       float64
	ProductCount  int64
	OrderCount    int64
	AverageRating float64
	RecentOrders  []*domorder.Order
}

const recentOrderLimit = 5

// GetDashboard aggregates the seller's numbers. Revenue counts only
// delivered orders and only the seller's own lines within them; the
// order count includes every order that touches the seller.
func (s *Service) GetDashboard(ctx context.Context, sellerID int64) (*Dashboard, error) {
	d := &Dashboard{RecentOrders: []*domorder.Order{}}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var ratingSum float64
	var rated int64
	for _, p := range products {
		if p.SellerID != sellerID {
			continue
		}
		d.ProductCount++
		if p.Rating > 0 {
			ratingSum += p.Rating
			rated++
		}
	}
	if rated > 0 {
		d.AverageRating = ratingSum / float64(rated)
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		var mine bool
		for _, item := range o.Items {
			if item.SellerID != sellerID {
				continue
			}
			mine = true
			if o.Status == domorder.StatusDelivered {
				d.Revenue += item.LineTotal()
			}
		}
		if mine {
			d.OrderCount++
			d.RecentOrders = append(d.RecentOrders, o)
		}
	}

	sort.SliceStable(d.RecentOrders, func(i, j int) bool {
		return d.RecentOrders[i].CreatedAt.After(d.RecentOrders[j].CreatedAt)
	})
	if len(d.RecentOrders) > recentOrderLimit {
		d.RecentOrders = d.RecentOrders[:recentOrderLimit]
	}

	return d, nil
}
