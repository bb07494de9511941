package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPost, "/api/v1/admin/products", token, map[string]any{
		"name":             "Pixel 9 Pro",
		"category_id":      1,
		"price":            899,
		"discount_percent": 5,
		"stock":            30,
		"is_active":        true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "pixel-9-pro", body["slug"])
	require.Equal(t, "Smartphones", body["category_name"])
	require.NotEmpty(t, body["sku"])

	// Now visible on the storefront.
	rec = env.do(t, http.MethodGet, "/api/v1/products/pixel-9-pro", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminCreateProduct_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPost, "/api/v1/admin/products", token, map[string]any{
		"name":        "iPhone 15 Pro",
		"slug":        "iphone-15-pro",
		"category_id": 1,
		"price":       999,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminUpdateProduct_ClearsDiscount(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/admin/products/1", token, map[string]any{
		"discount_percent": 0,
		"is_active":        true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 0, body["discount_percent"])
	require.EqualValues(t, 999, body["discounted_price"])
	// Fields absent from the request keep their stored values.
	require.Equal(t, "iPhone 15 Pro", body["name"])
	require.EqualValues(t, 45, body["stock"])
}

func TestAdminListProducts_IncludesInactive(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodGet, "/api/v1/admin/products", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataRows(t, rec), 6)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/products?status=inactive", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataRows(t, rec)
	require.Len(t, rows, 1)
	require.Equal(t, "Samsung 4K Smart TV", rows[0].(map[string]any)["name"])
}

func TestAdminDeleteCategory_InUse(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodDelete, "/api/v1/admin/categories/1", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Accessories has no products.
	rec = env.do(t, http.MethodDelete, "/api/v1/admin/categories/8", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminListCategories_SearchEnvelope(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodGet, "/api/v1/admin/categories?q=smart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataRows(t, rec)
	require.Len(t, rows, 1)
	require.Equal(t, "Smartphones", rows[0].(map[string]any)["name"])
	require.EqualValues(t, 1, meta(t, rec)["total"])
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPatch, "/api/v1/admin/orders/1", token, map[string]string{"status": "processing"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "processing", decodeBody(t, rec)["status"])

	// Delivered straight from processing skips the shipped step.
	rec = env.do(t, http.MethodPatch, "/api/v1/admin/orders/1", token, map[string]string{"status": "delivered"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminListOrders_SearchAndSort(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodGet, "/api/v1/admin/orders?q=fatima", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataRows(t, rec)
	require.Len(t, rows, 1)
	require.Equal(t, "ORD-1002", rows[0].(map[string]any)["order_no"])

	rec = env.do(t, http.MethodGet, "/api/v1/admin/orders?sort=newest", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows = dataRows(t, rec)
	require.Equal(t, "ORD-1003", rows[0].(map[string]any)["order_no"])
}

func TestAdminCreateUser_RoleRules(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "admin@primeship.dev")
	rootToken := env.tokenFor(t, "root@primeship.dev")

	// Admins cannot mint other admins.
	rec := env.do(t, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]string{
		"name":      "Second Admin",
		"email":     "admin2@primeship.dev",
		"password":  "secret123",
		"role_code": "ADMIN",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Super admins can.
	rec = env.do(t, http.MethodPost, "/api/v1/admin/users", rootToken, map[string]string{
		"name":      "Second Admin",
		"email":     "admin2@primeship.dev",
		"password":  "secret123",
		"role_code": "ADMIN",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "ADMIN", decodeBody(t, rec)["role_code"])
}

func TestAdminUserRoles_SystemRoleProtected(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPut, "/api/v1/admin/user-roles/1", token, map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/user-roles/4", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminUserRoles_CustomRoleLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodPost, "/api/v1/admin/user-roles", token, map[string]string{
		"code": "support_agent",
		"name": "Support Agent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "SUPPORT_AGENT", body["code"])
	roleID := int64(body["id"].(float64))

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/user-roles/5", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.EqualValues(t, 5, roleID)
}

func TestAdminListUsers_Paginated(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@primeship.dev")

	rec := env.do(t, http.MethodGet, "/api/v1/admin/users?page_size=2&page=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataRows(t, rec), 2)

	m := meta(t, rec)
	require.EqualValues(t, 4, m["total"])
	require.EqualValues(t, 2, m["total_pages"])
}
