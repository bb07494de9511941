package category

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	dom "github.com/primeship/primeship/internal/domain/category"
	"github.com/primeship/primeship/internal/listing"
)

// ProductCounter reports how many products reference a category, used to
// block deleting a category that is still in use.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type Service struct {
	repo     dom.Repository
	products ProductCounter
}

func NewService(repo dom.Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Create(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, dom.ErrCategoryInvalidName
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	} else if !slug.IsSlug(c.Slug) {
		return nil, dom.ErrCategoryInvalidSlug
	}
	if c.ParentID != nil {
		if _, err := s.repo.GetByID(ctx, *c.ParentID); err != nil {
			return nil, dom.ErrInvalidParent
		}
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	existed, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	if c.Name != "" {
		existed.Name = c.Name
	}
	if c.Slug != "" {
		if !slug.IsSlug(c.Slug) {
			return nil, dom.ErrCategoryInvalidSlug
		}
		existed.Slug = c.Slug
	}
	if c.Description != "" {
		existed.Description = c.Description
	}
	if c.ParentID != nil {
		if *c.ParentID == c.ID {
			return nil, dom.ErrInvalidParent
		}
		if _, err := s.repo.GetByID(ctx, *c.ParentID); err != nil {
			return nil, dom.ErrInvalidParent
		}
		existed.ParentID = c.ParentID
	}
	existed.IsActive = c.IsActive

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return dom.ErrCategoryInUse
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, categorySlug string) (*dom.Category, error) {
	return s.repo.GetBySlug(ctx, categorySlug)
}

func (s *Service) List(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.List(ctx)
}

func listConfig() listing.Config[*dom.Category] {
	return listing.Config[*dom.Category]{
		SearchText: func(c *dom.Category) []string {
			return []string{c.Name, c.Slug, c.Description}
		},
		Status: func(c *dom.Category) string { return c.Status() },
		Name:   func(c *dom.Category) string { return c.Name },
	}
}

// Search runs the listing pipeline over the full category tree for the
// admin table.
func (s *Service) Search(ctx context.Context, st listing.State) (listing.View[*dom.Category], error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.Category]{}, err
	}
	return listConfig().Compute(all, st), nil
}

// ListActive narrows the tree to storefront-visible categories.
func (s *Service) ListActive(ctx context.Context) ([]*dom.Category, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*dom.Category, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}
