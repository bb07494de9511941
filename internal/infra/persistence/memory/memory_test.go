package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "github.com/primeship/primeship/internal/domain/product"
	domuser "github.com/primeship/primeship/internal/domain/user"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func newProduct(name, sku, slug string) *domproduct.Product {
	return &domproduct.Product{Name: name, SKU: sku, Slug: slug, Price: 100, IsActive: true}
}

func TestProductStoreIDsAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()

	a, err := store.Create(ctx, newProduct("A", "SKU-A", "a"))
	require.NoError(t, err)
	b, err := store.Create(ctx, newProduct("B", "SKU-B", "b"))
	require.NoError(t, err)
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)

	require.NoError(t, store.Delete(ctx, b.ID))

	// Highest assigned ID grows from the surviving rows.
	c, err := store.Create(ctx, newProduct("C", "SKU-C", "c"))
	require.NoError(t, err)
	require.Equal(t, int64(2), c.ID)

	got, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)
}

func TestProductStoreUniqueSKUAndSlug(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()

	_, err := store.Create(ctx, newProduct("A", "SKU-A", "a"))
	require.NoError(t, err)

	_, err = store.Create(ctx, newProduct("B", "SKU-A", "b"))
	require.ErrorIs(t, err, domproduct.ErrSKUExists)
	_, err = store.Create(ctx, newProduct("B", "SKU-B", "a"))
	require.ErrorIs(t, err, domproduct.ErrSlugExists)
}

func TestProductStoreCloneIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()

	created, err := store.Create(ctx, newProduct("A", "SKU-A", "a"))
	require.NoError(t, err)
	created.Name = "mutated"

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)
}

func TestProductStoreDecrementStock(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()

	p := newProduct("A", "SKU-A", "a")
	p.Stock = 3
	created, err := store.Create(ctx, p)
	require.NoError(t, err)

	require.NoError(t, store.DecrementStock(ctx, created.ID, 2))
	require.ErrorIs(t, store.DecrementStock(ctx, created.ID, 2), domproduct.ErrOutOfStock)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Stock)

	require.NoError(t, store.RestoreStock(ctx, created.ID, 2))
	got, err = store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.Stock)

	require.ErrorIs(t, store.RestoreStock(ctx, 99, 1), domproduct.ErrProductNotFound)
}

func TestUserStoreEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()

	_, err := stores.Users.Create(ctx, &domuser.User{Name: "A", Email: "A@Example.com", RoleCode: domuser.RoleCodeCustomer})
	require.NoError(t, err)
	_, err = stores.Users.Create(ctx, &domuser.User{Name: "B", Email: "a@example.com", RoleCode: domuser.RoleCodeCustomer})
	require.ErrorIs(t, err, domuser.ErrEmailAlreadyUsed)
}

func TestCartStoreSetAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewCartStore()

	require.NoError(t, store.SetItem(ctx, 1, 10, 2))
	require.NoError(t, store.SetItem(ctx, 1, 11, 1))
	require.NoError(t, store.SetItem(ctx, 1, 10, 5))

	items, err := store.ListItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(10), items[0].ProductID)
	require.Equal(t, int64(5), items[0].Quantity)

	require.NoError(t, store.Clear(ctx, 1))
	items, err = store.ListItems(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()
	require.NoError(t, stores.SeedDemo(ctx, plainHasher{}))

	products, err := stores.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	roles, err := stores.Roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4)

	u, err := stores.Users.GetByEmail(ctx, "seller@primeship.dev")
	require.NoError(t, err)
	require.Equal(t, domuser.RoleCodeSeller, u.RoleCode)

	orders, err := stores.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	require.Equal(t, "ORD-1001", orders[0].OrderNo)
}
