package http

import (
	"net/http"

	domorder "github.com/primeship/primeship/internal/domain/order"
	"github.com/primeship/primeship/internal/listing"
)

func (a *API) handleListMyOrders(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	st := listing.StateFromQuery(r.URL.Query())
	view, err := a.orderSvc.ListByUser(r.Context(), user.UserID, st)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeView(w, view, st.PageSize, mapOrder)
}

func (a *API) handleGetMyOrder(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

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
	// Another user's order looks like a missing one.
	if order.UserID != user.UserID {
		respondError(w, http.StatusNotFound, domorder.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}

func (a *API) handleCancelMyOrder(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	order, err := a.orderSvc.Cancel(r.Context(), user.UserID, id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}
