package http

import (
	"net/http"

	"github.com/primeship/primeship/internal/listing"
)

func (a *API) handleSellerDashboard(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	dashboard, err := a.sellerSvc.GetDashboard(r.Context(), user.UserID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	recent := make([]map[string]any, 0, len(dashboard.RecentOrders))
	for _, o := range dashboard.RecentOrders {
		recent = append(recent, mapOrder(o))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"revenue":        dashboard.Revenue,
		"product_count":  dashboard.ProductCount,
		"order_count":    dashboard.OrderCount,
		"average_rating": dashboard.AverageRating,
		"recent_orders":  recent,
	})
}

func (a *API) handleSellerProducts(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.productSvc.ListBySeller(r.Context(), user.UserID, st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapProduct)
}

func (a *API) handleSellerOrders(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.orderSvc.ListBySeller(r.Context(), user.UserID, st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapOrder)
}
