package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	domorder "github.com/primeship/primeship/internal/domain/order"
)

type OrderStore struct {
	mu     sync.RWMutex
	orders map[int64]*domorder.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[int64]*domorder.Order)}
}

func (s *OrderStore) nextID() int64 {
	var max int64
	for id := range s.orders {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func cloneOrder(o *domorder.Order) *domorder.Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	return &c
}

func (s *OrderStore) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cloneOrder(o)
	c.ID = s.nextID()
	if c.OrderNo == "" {
		c.OrderNo = domorder.FormatOrderNo(c.ID)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	for i := range c.Items {
		c.Items[i].ID = int64(i + 1)
		c.Items[i].OrderID = c.ID
	}
	s.orders[c.ID] = c
	return cloneOrder(c), nil
}

func (s *OrderStore) List(ctx context.Context) ([]*domorder.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*domorder.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID int64) ([]*domorder.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []*domorder.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if o, ok := s.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domorder.ErrOrderNotFound
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status domorder.Status) (*domorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domorder.ErrOrderNotFound
	}
	o.Status = status
	return cloneOrder(o), nil
}
