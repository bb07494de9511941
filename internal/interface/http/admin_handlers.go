package http

import (
	"net/http"

	domcategory "github.com/primeship/primeship/internal/domain/category"
	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
	domuser "github.com/primeship/primeship/internal/domain/user"
	"github.com/primeship/primeship/internal/listing"
	productuc "github.com/primeship/primeship/internal/usecase/product"
	useruc "github.com/primeship/primeship/internal/usecase/user"
	userroleuc "github.com/primeship/primeship/internal/usecase/userrole"
)

type createRoleRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (a *API) handleListUserRoles(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.roleSvc.List(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapRole)
}

func (a *API) handleCreateUserRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	role, err := a.roleSvc.Create(r.Context(), userroleuc.CreateInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapRole(role))
}

func (a *API) handleGetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	role, err := a.roleSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapRole(role))
}

func (a *API) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req updateRoleRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	role, err := a.roleSvc.Update(r.Context(), userroleuc.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapRole(role))
}

func (a *API) handleDeleteUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.roleSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleCode string `json:"role_code" validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleCode *string `json:"role_code"`
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.userSvc.ListUsers(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapUser)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	executor := getAuthUser(r.Context())
	if executor == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req createUserRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	role, err := domuser.ParseRoleCode(req.RoleCode)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	user, err := a.userSvc.CreateUser(r.Context(), useruc.CreateUserInput{
		ExecutorRole: executor.RoleCode,
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		RoleCode:     role,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapUser(user))
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	u, err := a.userSvc.GetUser(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(u))
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	executor := getAuthUser(r.Context())
	if executor == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req updateUserRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var roleCode *domuser.RoleCode
	if req.RoleCode != nil {
		role, err := domuser.ParseRoleCode(*req.RoleCode)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		roleCode = &role
	}

	user, err := a.userSvc.UpdateUser(r.Context(), useruc.UpdateUserInput{
		ExecutorRole: executor.RoleCode,
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		RoleCode:     roleCode,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(user))
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	executor := getAuthUser(r.Context())
	if executor == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.userSvc.DeleteUser(r.Context(), executor.RoleCode, id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
	IsActive    bool   `json:"is_active"`
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.categorySvc.Search(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapCategory)
}

func (a *API) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	category, err := a.categorySvc.Create(r.Context(), &domcategory.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCategory(category))
}

func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	category, err := a.categorySvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategory(category))
}

func (a *API) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req categoryRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	category, err := a.categorySvc.Update(r.Context(), &domcategory.Category{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategory(category))
}

func (a *API) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.categorySvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type productRequest struct {
	Name            string   `json:"name" validate:"required"`
	SKU             string   `json:"sku"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	CategoryID      int64    `json:"category_id" validate:"required,gt=0"`
	SellerID        int64    `json:"seller_id" validate:"gte=0"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountPercent float64  `json:"discount_percent" validate:"gte=0,lte=100"`
	Stock           int64    `json:"stock" validate:"gte=0"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=5"`
	Featured        bool     `json:"featured"`
	IsActive        bool     `json:"is_active"`
	Images          []string `json:"images"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

func (r productRequest) toProduct(id int64) *domproduct.Product {
	return &domproduct.Product{
		ID:              id,
		Name:            r.Name,
		SKU:             r.SKU,
		Slug:            r.Slug,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		SellerID:        r.SellerID,
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		Stock:           r.Stock,
		Rating:          r.Rating,
		Featured:        r.Featured,
		IsActive:        r.IsActive,
		Images:          r.Images,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
}

// updateProductRequest keeps the resettable numerics as pointers so a
// request can clear a discount or rating back to zero; absent fields
// leave the stored value alone.
type updateProductRequest struct {
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	CategoryID      int64    `json:"category_id" validate:"gte=0"`
	SellerID        int64    `json:"seller_id" validate:"gte=0"`
	Price           float64  `json:"price" validate:"gte=0"`
	DiscountPercent *float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	Stock           *int64   `json:"stock" validate:"omitempty,gte=0"`
	Rating          *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Featured        bool     `json:"featured"`
	IsActive        bool     `json:"is_active"`
	Images          []string `json:"images"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

func (r updateProductRequest) toInput(id int64) productuc.UpdateInput {
	return productuc.UpdateInput{
		ID:              id,
		Name:            r.Name,
		SKU:             r.SKU,
		Slug:            r.Slug,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		SellerID:        r.SellerID,
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		Stock:           r.Stock,
		Rating:          r.Rating,
		Featured:        r.Featured,
		IsActive:        r.IsActive,
		Images:          r.Images,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
}

func (a *API) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.productSvc.List(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapProduct)
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	product, err := a.productSvc.Create(r.Context(), req.toProduct(0))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(product))
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req updateProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	product, err := a.productSvc.Update(r.Context(), req.toInput(id))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(product))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.orderSvc.List(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapOrder)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	order, err := a.orderSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	order, err := a.orderSvc.UpdateStatus(r.Context(), id, domorder.Status(req.Status))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}
