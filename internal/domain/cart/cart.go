package cart

const (
	// MaxItemQuantity caps any single cart line.
	MaxItemQuantity = 10

	// FreeShippingThreshold is the subtotal above which shipping is free;
	// below it a flat rate applies.
	FreeShippingThreshold = 50.0
	ShippingFlatRate      = 10.0

	TaxRate = 0.08

	// PromoSave10 takes 10% off the subtotal.
	PromoSave10     = "SAVE10"
	promoSave10Rate = 0.10
)

type Item struct {
	ProductID int64
	Quantity  int64
}

type DetailedItem struct {
	Item
	ProductName string
	SellerID    int64
	UnitPrice   float64
}

func (d DetailedItem) LineTotal() float64 {
	return d.UnitPrice * float64(d.Quantity)
}

type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
}

type Cart struct {
	UserID    int64
	Items     []DetailedItem
	PromoCode string
	Totals    Totals
}

// ValidPromo reports whether the code is one the marketplace honors.
func ValidPromo(code string) bool {
	return code == PromoSave10
}

// ComputeTotals derives the money breakdown for a set of cart lines.
// Shipping and tax follow the storefront rules; an honored promo code
// discounts the subtotal.
func ComputeTotals(items []DetailedItem, promoCode string) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.LineTotal()
	}
	if t.Subtotal > 0 && t.Subtotal <= FreeShippingThreshold {
		t.Shipping = ShippingFlatRate
	}
	t.Tax = t.Subtotal * TaxRate
	if promoCode == PromoSave10 {
		t.Discount = t.Subtotal * promoSave10Rate
	}
	t.Total = t.Subtotal + t.Shipping + t.Tax - t.Discount
	return t
}
