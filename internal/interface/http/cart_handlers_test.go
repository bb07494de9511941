package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	// Empty cart to start.
	rec := env.do(t, http.MethodGet, "/api/v1/me/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["items"])

	// Two pairs of sneakers: 2 x 120 = 240, free shipping, 8% tax.
	rec = env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 4, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	totals := decodeBody(t, rec)["totals"].(map[string]any)
	require.InDelta(t, 240, totals["subtotal"].(float64), 0.0001)
	require.InDelta(t, 0, totals["shipping"].(float64), 0.0001)
	require.InDelta(t, 240*0.08, totals["tax"].(float64), 0.0001)

	// Replacing the quantity, not adding to it.
	rec = env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 4, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	require.EqualValues(t, 1, items[0].(map[string]any)["quantity"])

	// Promo takes 10% off the subtotal.
	rec = env.do(t, http.MethodPost, "/api/v1/me/cart/promo", token, map[string]string{"code": "SAVE10"})
	require.Equal(t, http.StatusOK, rec.Code)
	totals = decodeBody(t, rec)["totals"].(map[string]any)
	require.InDelta(t, 12, totals["discount"].(float64), 0.0001)

	// Remove the line.
	rec = env.do(t, http.MethodDelete, "/api/v1/me/cart/items/4", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["items"])
}

func TestSetCartItem_Limits(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 1, "quantity": 11,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Samsung TV is delisted.
	rec = env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 5, "quantity": 1,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplyPromo_UnknownCode(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPost, "/api/v1/me/cart/promo", token, map[string]string{"code": "SAVE99"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 4, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/me/checkout", token, map[string]string{
		"customer_name":    "Ali Khan",
		"phone":            "0300-1111111",
		"shipping_address": "Lahore, Punjab",
		"payment_method":   "COD",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "pending", body["status"])
	require.Equal(t, "ORD-1006", body["order_no"])
	require.InDelta(t, 240+240*0.08, body["total_amount"].(float64), 0.0001)

	// Stock went down and the cart is empty again.
	p, err := env.stores.Products.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.EqualValues(t, 118, p.Stock)

	rec = env.do(t, http.MethodGet, "/api/v1/me/cart", token, nil)
	require.Empty(t, decodeBody(t, rec)["items"])
}

func TestCheckout_FailedLineRestoresEarlierStock(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 4, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Someone else bought out the sneakers while the cart sat.
	ctx := context.Background()
	sneakers, err := env.stores.Products.GetByID(ctx, 4)
	require.NoError(t, err)
	sneakers.Stock = 1
	_, err = env.stores.Products.Update(ctx, sneakers)
	require.NoError(t, err)

	rec = env.do(t, http.MethodPost, "/api/v1/me/checkout", token, map[string]string{
		"customer_name":    "Ali Khan",
		"phone":            "0300-1111111",
		"shipping_address": "Lahore, Punjab",
		"payment_method":   "COD",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// The phone taken for the first line came back; nothing shipped.
	phone, err := env.stores.Products.GetByID(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 45, phone.Stock)

	rec = env.do(t, http.MethodGet, "/api/v1/me/cart", token, nil)
	require.Len(t, decodeBody(t, rec)["items"], 2)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPost, "/api/v1/me/checkout", token, map[string]string{
		"customer_name":    "Ali Khan",
		"phone":            "0300-1111111",
		"shipping_address": "Lahore, Punjab",
		"payment_method":   "COD",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckout_MissingShippingDetails(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "ali@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/me/cart/items", token, map[string]any{
		"product_id": 4, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/me/checkout", token, map[string]string{
		"customer_name":  "Ali Khan",
		"payment_method": "COD",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
