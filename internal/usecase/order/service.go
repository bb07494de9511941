package order

import (
	"context"
	"time"

	dom "github.com/primeship/primeship/internal/domain/order"
	"github.com/primeship/primeship/internal/listing"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

// listConfig binds orders to the listing pipeline. Price maps to the
// order total so the admin table can sort by amount.
func listConfig() listing.Config[*dom.Order] {
	return listing.Config[*dom.Order]{
		SearchText: func(o *dom.Order) []string {
			return []string{o.OrderNo, o.CustomerName, o.Phone}
		},
		Status:    func(o *dom.Order) string { return string(o.Status) },
		Price:     func(o *dom.Order) float64 { return o.TotalAmount },
		CreatedAt: func(o *dom.Order) time.Time { return o.CreatedAt },
		Name:      func(o *dom.Order) string { return o.CustomerName },
	}
}

func (s *Service) List(ctx context.Context, st listing.State) (listing.View[*dom.Order], error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.Order]{}, err
	}
	return listConfig().Compute(orders, st), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, st listing.State) (listing.View[*dom.Order], error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return listing.View[*dom.Order]{}, err
	}
	return listConfig().Compute(orders, st), nil
}

// ListBySeller keeps only the orders containing at least one of the
// seller's items.
func (s *Service) ListBySeller(ctx context.Context, sellerID int64, st listing.State) (listing.View[*dom.Order], error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.Order]{}, err
	}
	own := make([]*dom.Order, 0, len(orders))
	for _, o := range orders {
		for _, item := range o.Items {
			if item.SellerID == sellerID {
				own = append(own, o)
				break
			}
		}
	}
	return listConfig().Compute(own, st), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an order along its life-cycle, rejecting any step
// the current status does not allow.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next dom.Status) (*dom.Order, error) {
	if !next.IsValid() {
		return nil, dom.ErrInvalidStatus
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, dom.ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, next)
}

// Cancel is the customer-facing path: it only works on the caller's own
// order and only while the order has not shipped.
func (s *Service) Cancel(ctx context.Context, userID, id int64) (*dom.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, dom.ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(dom.StatusCancelled) {
		return nil, dom.ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, dom.StatusCancelled)
}
