package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/primeship/primeship/internal/listing"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.productSvc.Storefront(r.Context(), st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapProduct)
}

func (a *API) handleGetProductBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// handleHome serves the storefront landing payload: featured products
// plus the active category tree in one round trip.
func (a *API) handleHome(w http.ResponseWriter, r *http.Request) {
	featured, err := a.productSvc.Featured(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	categories, err := a.categorySvc.ListActive(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	featuredResp := make([]map[string]any, 0, len(featured))
	for _, p := range featured {
		featuredResp = append(featuredResp, mapProduct(p))
	}
	categoriesResp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		categoriesResp = append(categoriesResp, mapCategory(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"featured_products": featuredResp,
		"categories":        categoriesResp,
	})
}

func (a *API) handleListCategoriesPublic(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.ListActive(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, mapCategory(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
