package memory

import (
	"context"
	"sync"

	domcart "github.com/primeship/primeship/internal/domain/cart"
)

type userCart struct {
	items []domcart.Item
	promo string
}

type CartStore struct {
	mu    sync.RWMutex
	carts map[int64]*userCart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int64]*userCart)}
}

func (s *CartStore) cart(userID int64) *userCart {
	c, ok := s.carts[userID]
	if !ok {
		c = &userCart{}
		s.carts[userID] = c
	}
	return c
}

func (s *CartStore) SetItem(ctx context.Context, userID, productID, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	c.items = append(c.items, domcart.Item{ProductID: productID, Quantity: quantity})
	return nil
}

func (s *CartStore) RemoveItem(ctx context.Context, userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return domcart.ErrItemNotFound
}

func (s *CartStore) ListItems(ctx context.Context, userID int64) ([]domcart.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	items := make([]domcart.Item, len(c.items))
	copy(items, c.items)
	return items, nil
}

func (s *CartStore) SetPromo(ctx context.Context, userID int64, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(userID).promo = code
	return nil
}

func (s *CartStore) GetPromo(ctx context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[userID]; ok {
		return c.promo, nil
	}
	return "", nil
}

func (s *CartStore) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
