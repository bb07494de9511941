package memory

import (
	"context"
	"time"

	domcart "github.com/primeship/primeship/internal/domain/cart"
	domcategory "github.com/primeship/primeship/internal/domain/category"
	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
	domuser "github.com/primeship/primeship/internal/domain/user"
	domrole "github.com/primeship/primeship/internal/domain/userrole"
)

// Stores bundles every memory-backed repository behind one handle.
type Stores struct {
	Products   *ProductStore
	Categories *CategoryStore
	Orders     *OrderStore
	Carts      *CartStore
	Users      *UserStore
	Roles      *RoleStore
}

func NewStores() *Stores {
	roles := NewRoleStore()
	return &Stores{
		Products:   NewProductStore(),
		Categories: NewCategoryStore(),
		Orders:     NewOrderStore(),
		Carts:      NewCartStore(),
		Users:      NewUserStore(roles),
		Roles:      roles,
	}
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

var _ domcart.Repository = (*CartStore)(nil)
var _ domproduct.Repository = (*ProductStore)(nil)
var _ domcategory.Repository = (*CategoryStore)(nil)
var _ domorder.Repository = (*OrderStore)(nil)
var _ domuser.Repository = (*UserStore)(nil)
var _ domrole.Repository = (*RoleStore)(nil)

// SeedDemo loads the demo marketplace: roles, a user per role, the
// product catalog and a handful of historical orders. It is meant for a
// fresh store; seeding twice fails on duplicate slugs.
func (s *Stores) SeedDemo(ctx context.Context, hasher PasswordHasher) error {
	for _, role := range []*domrole.UserRole{
		{Code: domuser.RoleCodeSuperAdmin, Name: "Super Admin", Description: "Full marketplace control", IsSystem: true},
		{Code: domuser.RoleCodeAdmin, Name: "Admin", Description: "Back-office operations", IsSystem: true},
		{Code: domuser.RoleCodeSeller, Name: "Seller", Description: "Seller dashboard access", IsSystem: true},
		{Code: domuser.RoleCodeCustomer, Name: "Customer", Description: "Storefront shopper", IsSystem: true},
	} {
		if _, err := s.Roles.Create(ctx, role); err != nil {
			return err
		}
	}

	hash, err := hasher.Hash("password123")
	if err != nil {
		return err
	}
	users := []*domuser.User{
		{Name: "Root", Email: "root@primeship.dev", RoleCode: domuser.RoleCodeSuperAdmin, UserRoleID: 1},
		{Name: "Store Admin", Email: "admin@primeship.dev", RoleCode: domuser.RoleCodeAdmin, UserRoleID: 2},
		{Name: "Demo Seller", Email: "seller@primeship.dev", RoleCode: domuser.RoleCodeSeller, UserRoleID: 3},
		{Name: "Ali Khan", Email: "ali@primeship.dev", RoleCode: domuser.RoleCodeCustomer, UserRoleID: 4},
	}
	for _, u := range users {
		u.PasswordHash = hash
		if _, err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	categories := []*domcategory.Category{
		{Name: "Smartphones", Slug: "smartphones", IsActive: true},
		{Name: "Laptops", Slug: "laptops", IsActive: true},
		{Name: "Audio", Slug: "audio", IsActive: true},
		{Name: "Footwear", Slug: "footwear", IsActive: true},
		{Name: "Televisions", Slug: "televisions", IsActive: true},
		{Name: "Home Appliances", Slug: "home-appliances", IsActive: true},
		{Name: "Clothing", Slug: "clothing", IsActive: true},
		{Name: "Accessories", Slug: "accessories", IsActive: false},
	}
	for _, c := range categories {
		if _, err := s.Categories.Create(ctx, c); err != nil {
			return err
		}
	}

	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}
	products := []*domproduct.Product{
		{
			Name: "iPhone 15 Pro", SKU: "SKU-IPH15P-2024", Slug: "iphone-15-pro",
			Description: "Latest Apple iPhone with advanced camera system and A17 Pro chip",
			CategoryID:  1, CategoryName: "Smartphones", SellerID: 3,
			Price: 999, DiscountPercent: 10, Stock: 45, Rating: 4.8,
			Featured: true, IsActive: true,
			Images:    []string{"https://images.primeship.dev/products/iphone-15-pro.jpg"},
			MetaTitle: "iPhone 15 Pro - Buy Now", MetaDescription: "Get the latest iPhone 15 Pro with amazing features and camera",
			CreatedAt: day("2024-01-15"),
		},
		{
			Name: "MacBook Pro 16", SKU: "SKU-MBP16-2024", Slug: "macbook-pro-16",
			Description: "Powerful laptop with M3 Max chip for professionals",
			CategoryID:  2, CategoryName: "Laptops",
			Price: 2499, DiscountPercent: 8, Stock: 22, Rating: 4.9,
			Featured: true, IsActive: true,
			Images:    []string{"https://images.primeship.dev/products/macbook-pro-16.jpg"},
			MetaTitle: "MacBook Pro 16 - Professional Laptop", MetaDescription: "Powerful MacBook Pro with M3 chip for maximum performance",
			CreatedAt: day("2024-01-10"),
		},
		{
			Name: "Sony WH-1000XM5", SKU: "SKU-SONYWH-1000", Slug: "sony-wh-1000xm5",
			Description: "Noise cancelling wireless headphones with premium sound",
			CategoryID:  3, CategoryName: "Audio", SellerID: 3,
			Price: 399, DiscountPercent: 12, Stock: 78, Rating: 4.7,
			IsActive: true,
			Images:   []string{"https://images.primeship.dev/products/sony-wh-1000xm5.jpg"},
			MetaTitle: "Sony WH-1000XM5 Headphones", MetaDescription: "Premium noise cancelling headphones with exceptional sound quality",
			CreatedAt: day("2024-01-05"),
		},
		{
			Name: "Nike Air Max 270", SKU: "SKU-NIKE270-2024", Slug: "nike-air-max-270",
			Description: "Comfortable sneakers with Max Air cushioning",
			CategoryID:  4, CategoryName: "Footwear",
			Price: 150, DiscountPercent: 20, Stock: 120, Rating: 4.2,
			IsActive: true,
			Images:   []string{"https://images.primeship.dev/products/nike-air-max-270.jpg"},
			MetaTitle: "Nike Air Max 270 - Running Shoes", MetaDescription: "Comfortable running shoes with air cushioning technology",
			CreatedAt: day("2024-01-20"),
		},
		{
			Name: "Samsung 4K Smart TV", SKU: "SKU-SAMSUNGTV-65", Slug: "samsung-4k-smart-tv",
			Description: "65\" 4K UHD Smart TV with Quantum Processor",
			CategoryID:  5, CategoryName: "Televisions",
			Price: 799, DiscountPercent: 12.5, Stock: 15, Rating: 4.4,
			IsActive: false,
			Images:   []string{"https://images.primeship.dev/products/samsung-4k-tv.jpg"},
			MetaTitle: "Samsung 65 4K Smart TV", MetaDescription: "Ultra HD Smart TV with brilliant colors and smart features",
			CreatedAt: day("2024-01-12"),
		},
		{
			Name: "Dyson V15 Detect", SKU: "SKU-DYSONV15-2024", Slug: "dyson-v15-detect",
			Description: "Cordless vacuum with laser dust detection",
			CategoryID:  6, CategoryName: "Home Appliances",
			Price: 699, DiscountPercent: 7, Stock: 32, Rating: 4.6,
			Featured: true, IsActive: true,
			Images:   []string{"https://images.primeship.dev/products/dyson-v15.jpg"},
			MetaTitle: "Dyson V15 Detect Cordless Vacuum", MetaDescription: "Powerful cordless vacuum with advanced cleaning technology",
			CreatedAt: day("2024-01-18"),
		},
	}
	for _, p := range products {
		if _, err := s.Products.Create(ctx, p); err != nil {
			return err
		}
	}

	// Historical orders; unit prices are snapshots from sale time, not
	// recomputed from the current catalog.
	orders := []*domorder.Order{
		{
			UserID: 4, CustomerName: "Ali Khan", Phone: "0300-1111111",
			ShippingAddress: "Lahore, Punjab",
			Status:          domorder.StatusPending, PaymentMethod: domorder.PaymentCOD,
			Items: []domorder.Item{
				{ProductID: 1, SellerID: 3, Name: "iPhone 15 Pro", UnitPrice: 899, Quantity: 1},
				{ProductID: 3, SellerID: 3, Name: "Sony WH-1000XM5", UnitPrice: 349, Quantity: 1},
			},
			CreatedAt: day("2026-01-10"),
		},
		{
			UserID: 4, CustomerName: "Fatima Noor", Phone: "0301-2222222",
			ShippingAddress: "Karachi, Sindh",
			Status:          domorder.StatusProcessing, PaymentMethod: domorder.PaymentCard,
			Items: []domorder.Item{
				{ProductID: 3, SellerID: 3, Name: "Sony WH-1000XM5", UnitPrice: 349, Quantity: 1},
			},
			CreatedAt: day("2026-01-12"),
		},
		{
			UserID: 4, CustomerName: "Usman Ahmad", Phone: "0302-3333333",
			ShippingAddress: "Islamabad, ICT",
			Status:          domorder.StatusShipped, PaymentMethod: domorder.PaymentCard,
			Items: []domorder.Item{
				{ProductID: 2, Name: "MacBook Pro 16", UnitPrice: 2299, Quantity: 1},
			},
			CreatedAt: day("2026-01-14"),
		},
		{
			UserID: 4, CustomerName: "Ayesha Malik", Phone: "0303-4444444",
			ShippingAddress: "Faisalabad, Punjab",
			Status:          domorder.StatusDelivered, PaymentMethod: domorder.PaymentCOD,
			Items: []domorder.Item{
				{ProductID: 4, Name: "Nike Air Max 270", UnitPrice: 120, Quantity: 2},
				{ProductID: 1, SellerID: 3, Name: "iPhone 15 Pro", UnitPrice: 899, Quantity: 1},
			},
			CreatedAt: day("2026-01-05"),
		},
		{
			UserID: 4, CustomerName: "Hamza Sheikh", Phone: "0304-5555555",
			ShippingAddress: "Multan, Punjab",
			Status:          domorder.StatusCancelled, PaymentMethod: domorder.PaymentCOD,
			Items: []domorder.Item{
				{ProductID: 5, Name: "Samsung 4K Smart TV", UnitPrice: 699, Quantity: 1},
			},
			CreatedAt: day("2026-01-08"),
		},
	}
	for _, o := range orders {
		var subtotal float64
		for _, it := range o.Items {
			subtotal += it.LineTotal()
		}
		o.Subtotal = subtotal
		o.Tax = subtotal * domcart.TaxRate
		o.TotalAmount = o.Subtotal + o.Shipping + o.Tax - o.Discount
		if _, err := s.Orders.Create(ctx, o); err != nil {
			return err
		}
	}

	return nil
}
