// Package memory holds the default storage backend: mutex-guarded maps
// seeded with the demo catalog. Stores hand out clones so callers can
// never mutate shared state behind the lock, and new records take
// max(existing ids)+1.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	domproduct "github.com/primeship/primeship/internal/domain/product"
)

type ProductStore struct {
	mu       sync.RWMutex
	products map[int64]*domproduct.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[int64]*domproduct.Product)}
}

func (s *ProductStore) nextID() int64 {
	var max int64
	for id := range s.products {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func cloneProduct(p *domproduct.Product) *domproduct.Product {
	c := *p
	c.Images = slices.Clone(p.Images)
	return &c
}

func (s *ProductStore) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return nil, domproduct.ErrSKUExists
		}
		if existing.Slug == p.Slug {
			return nil, domproduct.ErrSlugExists
		}
	}

	c := cloneProduct(p)
	c.ID = s.nextID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.products[c.ID] = c
	return cloneProduct(c), nil
}

func (s *ProductStore) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[p.ID]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	for _, other := range s.products {
		if other.ID == p.ID {
			continue
		}
		if other.SKU == p.SKU {
			return nil, domproduct.ErrSKUExists
		}
		if other.Slug == p.Slug {
			return nil, domproduct.ErrSlugExists
		}
	}

	c := cloneProduct(p)
	c.CreatedAt = existing.CreatedAt
	s.products[c.ID] = c
	return cloneProduct(c), nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.products[id]; ok {
		return cloneProduct(p), nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (s *ProductStore) GetBySlug(ctx context.Context, slug string) (*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return cloneProduct(p), nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (s *ProductStore) GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domproduct.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			products = append(products, cloneProduct(p))
		}
	}
	return products, nil
}

func (s *ProductStore) List(ctx context.Context) ([]*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domproduct.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, cloneProduct(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *ProductStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *ProductStore) DecrementStock(ctx context.Context, id int64, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domproduct.ErrProductNotFound
	}
	if p.Stock < qty {
		return domproduct.ErrOutOfStock
	}
	p.Stock -= qty
	return nil
}

func (s *ProductStore) RestoreStock(ctx context.Context, id int64, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domproduct.ErrProductNotFound
	}
	p.Stock += qty
	return nil
}
