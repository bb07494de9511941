package memory

import (
	"context"
	"sort"
	"sync"

	domcategory "github.com/primeship/primeship/internal/domain/category"
)

type CategoryStore struct {
	mu         sync.RWMutex
	categories map[int64]*domcategory.Category
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{categories: make(map[int64]*domcategory.Category)}
}

func (s *CategoryStore) nextID() int64 {
	var max int64
	for id := range s.categories {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func cloneCategory(c *domcategory.Category) *domcategory.Category {
	cp := *c
	if c.ParentID != nil {
		parent := *c.ParentID
		cp.ParentID = &parent
	}
	return &cp
}

func (s *CategoryStore) Create(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Slug == c.Slug {
			return nil, domcategory.ErrCategorySlugExists
		}
	}
	if c.ParentID != nil {
		if _, ok := s.categories[*c.ParentID]; !ok {
			return nil, domcategory.ErrInvalidParent
		}
	}

	cp := cloneCategory(c)
	cp.ID = s.nextID()
	s.categories[cp.ID] = cp
	return cloneCategory(cp), nil
}

func (s *CategoryStore) Update(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[c.ID]; !ok {
		return nil, domcategory.ErrCategoryNotFound
	}
	for _, other := range s.categories {
		if other.ID != c.ID && other.Slug == c.Slug {
			return nil, domcategory.ErrCategorySlugExists
		}
	}
	if c.ParentID != nil {
		if *c.ParentID == c.ID {
			return nil, domcategory.ErrInvalidParent
		}
		if _, ok := s.categories[*c.ParentID]; !ok {
			return nil, domcategory.ErrInvalidParent
		}
	}

	cp := cloneCategory(c)
	s.categories[cp.ID] = cp
	return cloneCategory(cp), nil
}

func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return domcategory.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domcategory.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.categories[id]; ok {
		return cloneCategory(c), nil
	}
	return nil, domcategory.ErrCategoryNotFound
}

func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (*domcategory.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return cloneCategory(c), nil
		}
	}
	return nil, domcategory.ErrCategoryNotFound
}

func (s *CategoryStore) List(ctx context.Context) ([]*domcategory.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*domcategory.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, cloneCategory(c))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}
