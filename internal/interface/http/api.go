package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "github.com/primeship/primeship/internal/domain/cart"
	domcategory "github.com/primeship/primeship/internal/domain/category"
	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
	domuser "github.com/primeship/primeship/internal/domain/user"
	domrole "github.com/primeship/primeship/internal/domain/userrole"
	"github.com/primeship/primeship/internal/listing"
	authuc "github.com/primeship/primeship/internal/usecase/auth"
	cartuc "github.com/primeship/primeship/internal/usecase/cart"
	categoryuc "github.com/primeship/primeship/internal/usecase/category"
	checkoutuc "github.com/primeship/primeship/internal/usecase/checkout"
	orderuc "github.com/primeship/primeship/internal/usecase/order"
	productuc "github.com/primeship/primeship/internal/usecase/product"
	selleruc "github.com/primeship/primeship/internal/usecase/seller"
	useruc "github.com/primeship/primeship/internal/usecase/user"
	userroleuc "github.com/primeship/primeship/internal/usecase/userrole"
)

type API struct {
	authSvc     *authuc.Service
	userSvc     *useruc.Service
	roleSvc     *userroleuc.Service
	categorySvc *categoryuc.Service
	productSvc  *productuc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	orderSvc    *orderuc.Service
	sellerSvc   *selleruc.Service
	validator   *validator.Validate
	tokenSvc    authuc.TokenService
	logger      *charmlog.Logger
}

type Dependencies struct {
	AuthService     *authuc.Service
	UserService     *useruc.Service
	UserRoleService *userroleuc.Service
	CategoryService *categoryuc.Service
	ProductService  *productuc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	OrderService    *orderuc.Service
	SellerService   *selleruc.Service
	TokenService    authuc.TokenService
	Logger          *charmlog.Logger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = charmlog.Default()
	}
	return &API{
		authSvc:     deps.AuthService,
		userSvc:     deps.UserService,
		roleSvc:     deps.UserRoleService,
		categorySvc: deps.CategoryService,
		productSvc:  deps.ProductService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		orderSvc:    deps.OrderService,
		sellerSvc:   deps.SellerService,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)
		r.Post("/auth/register", a.handleRegister)

		r.Get("/home", a.handleHome)
		r.Get("/categories", a.handleListCategoriesPublic)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{slug}", a.handleGetProductBySlug)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me/cart", a.handleGetCart)
			pr.Put("/me/cart/items", a.handleSetCartItem)
			pr.Delete("/me/cart/items/{productID}", a.handleRemoveCartItem)
			pr.Post("/me/cart/promo", a.handleApplyPromo)
			pr.Post("/me/checkout", a.handleCheckout)
			pr.Get("/me/orders", a.handleListMyOrders)
			pr.Get("/me/orders/{id}", a.handleGetMyOrder)
			pr.Post("/me/orders/{id}/cancel", a.handleCancelMyOrder)
		})

		r.Group(func(sr chi.Router) {
			sr.Use(a.authMiddleware)
			sr.Use(a.requireRoles(domuser.RoleCodeSeller))

			sr.Route("/seller", func(seller chi.Router) {
				seller.Get("/dashboard", a.handleSellerDashboard)
				seller.Get("/products", a.handleSellerProducts)
				seller.Get("/orders", a.handleSellerOrders)
			})
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Use(a.requireRoles(domuser.RoleCodeAdmin, domuser.RoleCodeSuperAdmin))

			ar.Route("/admin", func(admin chi.Router) {
				admin.Route("/user-roles", func(rr chi.Router) {
					rr.Get("/", a.handleListUserRoles)
					rr.Post("/", a.handleCreateUserRole)
					rr.Get("/{id}", a.handleGetUserRole)
					rr.Put("/{id}", a.handleUpdateUserRole)
					rr.Delete("/{id}", a.handleDeleteUserRole)
				})

				admin.Route("/users", func(rr chi.Router) {
					rr.Get("/", a.handleListUsers)
					rr.Post("/", a.handleCreateUser)
					rr.Get("/{id}", a.handleGetUser)
					rr.Put("/{id}", a.handleUpdateUser)
					rr.Delete("/{id}", a.handleDeleteUser)
				})

				admin.Route("/categories", func(rr chi.Router) {
					rr.Get("/", a.handleListCategories)
					rr.Post("/", a.handleCreateCategory)
					rr.Get("/{id}", a.handleGetCategory)
					rr.Put("/{id}", a.handleUpdateCategory)
					rr.Delete("/{id}", a.handleDeleteCategory)
				})

				admin.Route("/products", func(rr chi.Router) {
					rr.Get("/", a.handleListProductsAdmin)
					rr.Post("/", a.handleCreateProduct)
					rr.Get("/{id}", a.handleGetProduct)
					rr.Put("/{id}", a.handleUpdateProduct)
					rr.Delete("/{id}", a.handleDeleteProduct)
				})

				admin.Route("/orders", func(rr chi.Router) {
					rr.Get("/", a.handleListOrders)
					rr.Get("/{id}", a.handleGetOrder)
					rr.Patch("/{id}", a.handleUpdateOrderStatus)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeView wraps a computed page in the shared list envelope. Every
// collection endpoint responds with the same shape so clients can reuse
// their pagination code.
func writeView[T any](w http.ResponseWriter, view listing.View[T], size int, mapRow func(T) map[string]any) {
	rows := make([]map[string]any, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, mapRow(row))
	}
	if size <= 0 {
		size = listing.DefaultPageSize
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": rows,
		"meta": map[string]any{
			"page":        view.Page,
			"page_size":   size,
			"total":       view.TotalFiltered,
			"total_pages": view.TotalPages,
		},
	})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role_code": u.RoleCode,
	}
}

func mapRole(role *domrole.UserRole) map[string]any {
	return map[string]any{
		"id":          role.ID,
		"code":        role.Code,
		"name":        role.Name,
		"description": role.Description,
		"is_system":   role.IsSystem,
	}
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"parent_id":   c.ParentID,
		"is_active":   c.IsActive,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":               p.ID,
		"name":             p.Name,
		"sku":              p.SKU,
		"slug":             p.Slug,
		"description":      p.Description,
		"category_id":      p.CategoryID,
		"category_name":    p.CategoryName,
		"seller_id":        p.SellerID,
		"price":            p.Price,
		"discount_percent": p.DiscountPercent,
		"discounted_price": p.DiscountedPrice(),
		"stock":            p.Stock,
		"rating":           p.Rating,
		"featured":         p.Featured,
		"is_active":        p.IsActive,
		"images":           p.Images,
		"meta_title":       p.MetaTitle,
		"meta_description": p.MetaDescription,
		"created_at":       p.CreatedAt,
	}
}

func mapCart(cart *domcart.Cart) map[string]any {
	items := make([]map[string]any, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, map[string]any{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"name":       item.ProductName,
			"unit_price": item.UnitPrice,
			"line_total": item.LineTotal(),
		})
	}
	return map[string]any{
		"user_id":    cart.UserID,
		"items":      items,
		"promo_code": cart.PromoCode,
		"totals": map[string]any{
			"subtotal": cart.Totals.Subtotal,
			"shipping": cart.Totals.Shipping,
			"tax":      cart.Totals.Tax,
			"discount": cart.Totals.Discount,
			"total":    cart.Totals.Total,
		},
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"product_id": item.ProductID,
			"seller_id":  item.SellerID,
			"name":       item.Name,
			"unit_price": item.UnitPrice,
			"quantity":   item.Quantity,
			"line_total": item.LineTotal(),
		})
	}

	return map[string]any{
		"id":               o.ID,
		"order_no":         o.OrderNo,
		"user_id":          o.UserID,
		"customer_name":    o.CustomerName,
		"phone":            o.Phone,
		"shipping_address": o.ShippingAddress,
		"status":           o.Status,
		"payment_method":   o.PaymentMethod,
		"subtotal":         o.Subtotal,
		"shipping":         o.Shipping,
		"tax":              o.Tax,
		"discount":         o.Discount,
		"total_amount":     o.TotalAmount,
		"created_at":       o.CreatedAt,
		"items":            items,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domuser.ErrCannotAssignRole),
		errors.Is(err, domuser.ErrInvalidRoleCode),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domcategory.ErrCategoryInvalidName),
		errors.Is(err, domcategory.ErrCategoryInvalidSlug),
		errors.Is(err, domcategory.ErrInvalidParent):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domcategory.ErrCategorySlugExists),
		errors.Is(err, domproduct.ErrSKUExists),
		errors.Is(err, domproduct.ErrSlugExists),
		errors.Is(err, domrole.ErrRoleCodeExisted),
		errors.Is(err, domuser.ErrEmailAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domrole.ErrRoleNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcart.ErrItemNotFound),
		errors.Is(err, domorder.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domrole.ErrRoleImmutable),
		errors.Is(err, domrole.ErrRoleInUse),
		errors.Is(err, domcategory.ErrCategoryInUse),
		errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrInvalidPromo),
		errors.Is(err, domorder.ErrEmptyOrderItems),
		errors.Is(err, domorder.ErrInvalidPayment),
		errors.Is(err, domorder.ErrCheckoutValidation),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrInvalidTransition),
		errors.Is(err, domproduct.ErrOutOfStock):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
