package product

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Product struct {
	ID              int64
	Name            string
	SKU             string
	Slug            string
	Description     string
	CategoryID      int64
	CategoryName    string
	SellerID        int64
	Price           float64
	DiscountPercent float64
	Stock           int64
	Rating          float64
	Featured        bool
	IsActive        bool
	Images          []string
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
}

// DiscountedPrice is the canonical selling price. Every path that
// displays, filters or sorts by price goes through this method so the
// catalog list, the price cap and the cart never disagree.
func (p *Product) DiscountedPrice() float64 {
	return p.Price - p.Price*p.DiscountPercent/100
}

func (p *Product) Status() string {
	if p.IsActive {
		return StatusActive
	}
	return StatusInactive
}
