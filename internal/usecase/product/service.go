package product

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gosimple/slug"

	domcategory "github.com/primeship/primeship/internal/domain/category"
	dom "github.com/primeship/primeship/internal/domain/product"
	"github.com/primeship/primeship/internal/listing"
)

type Service struct {
	repo       dom.Repository
	categories domcategory.Repository
}

func NewService(repo dom.Repository, categories domcategory.Repository) *Service {
	return &Service{repo: repo, categories: categories}
}

// listConfig binds products to the listing pipeline. Price is the
// discounted price so the storefront cap and sort match what shoppers
// actually pay.
func listConfig() listing.Config[*dom.Product] {
	return listing.Config[*dom.Product]{
		SearchText: func(p *dom.Product) []string {
			return []string{p.Name, p.SKU, p.Description, p.CategoryName}
		},
		Status:     func(p *dom.Product) string { return p.Status() },
		CategoryID: func(p *dom.Product) int64 { return p.CategoryID },
		Price:      func(p *dom.Product) float64 { return p.DiscountedPrice() },
		Rating:     func(p *dom.Product) float64 { return p.Rating },
		CreatedAt:  func(p *dom.Product) time.Time { return p.CreatedAt },
		Name:       func(p *dom.Product) string { return p.Name },
	}
}

// List serves the admin catalog table: every product, all statuses,
// narrowed by the caller's filter state.
func (s *Service) List(ctx context.Context, st listing.State) (listing.View[*dom.Product], error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.Product]{}, err
	}
	return listConfig().Compute(products, st), nil
}

// Storefront serves the public catalog. Only active products are
// visible; a status filter from the query string cannot widen that.
func (s *Service) Storefront(ctx context.Context, st listing.State) (listing.View[*dom.Product], error) {
	st.Status = dom.StatusActive
	return s.List(ctx, st)
}

// ListBySeller narrows the catalog to one seller's products for the
// seller console.
func (s *Service) ListBySeller(ctx context.Context, sellerID int64, st listing.State) (listing.View[*dom.Product], error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.Product]{}, err
	}
	own := make([]*dom.Product, 0, len(products))
	for _, p := range products {
		if p.SellerID == sellerID {
			own = append(own, p)
		}
	}
	return listConfig().Compute(own, st), nil
}

// Featured returns the active featured products for the home page.
func (s *Service) Featured(ctx context.Context) ([]*dom.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var featured []*dom.Product
	for _, p := range products {
		if p.Featured && p.IsActive {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug is the storefront detail lookup. Inactive products are
// hidden from it.
func (s *Service) GetBySlug(ctx context.Context, productSlug string) (*dom.Product, error) {
	p, err := s.repo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, dom.ErrProductNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	cat, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	p.CategoryName = cat.Name

	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.SKU == "" {
		p.SKU = generateSKU(p.Name)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return s.repo.Create(ctx, p)
}

// UpdateInput is a partial update. Zero-valued strings and ids keep the
// stored value; the pointer fields distinguish "leave alone" (nil) from
// "set back to zero", so a discount, stock level or rating can be cleared.
type UpdateInput struct {
	ID              int64
	Name            string
	SKU             string
	Slug            string
	Description     string
	CategoryID      int64
	SellerID        int64
	Price           float64
	DiscountPercent *float64
	Stock           *int64
	Rating          *float64
	Images          []string
	MetaTitle       string
	MetaDescription string
	Featured        bool
	IsActive        bool
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		existed.Name = in.Name
	}
	if in.SKU != "" {
		existed.SKU = in.SKU
	}
	if in.Slug != "" {
		existed.Slug = slug.Make(in.Slug)
	}
	if in.Description != "" {
		existed.Description = in.Description
	}
	if in.CategoryID > 0 && in.CategoryID != existed.CategoryID {
		cat, err := s.categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		existed.CategoryID = cat.ID
		existed.CategoryName = cat.Name
	}
	if in.SellerID > 0 {
		existed.SellerID = in.SellerID
	}
	if in.Price > 0 {
		existed.Price = in.Price
	}
	if in.DiscountPercent != nil {
		existed.DiscountPercent = *in.DiscountPercent
	}
	if in.Stock != nil {
		existed.Stock = *in.Stock
	}
	if in.Rating != nil {
		existed.Rating = *in.Rating
	}
	if len(in.Images) > 0 {
		existed.Images = in.Images
	}
	if in.MetaTitle != "" {
		existed.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existed.MetaDescription = in.MetaDescription
	}
	existed.Featured = in.Featured
	existed.IsActive = in.IsActive

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// generateSKU derives a unique-enough stock keeping unit from the
// product name, e.g. "SKU-IPHONE15-4821".
func generateSKU(name string) string {
	base := strings.ToUpper(slug.Make(name))
	base = strings.ReplaceAll(base, "-", "")
	if len(base) > 10 {
		base = base[:10]
	}
	return fmt.Sprintf("SKU-%s-%04d", base, rand.Intn(10000))
}
