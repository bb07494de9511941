package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dom "github.com/primeship/primeship/internal/domain/order"
	"github.com/primeship/primeship/internal/listing"
)

type mockOrderRepository struct {
	orders []*dom.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, o *dom.Order) (*dom.Order, error) {
	o.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, o)
	return o, nil
}

func (m *mockOrderRepository) List(ctx context.Context) ([]*dom.Order, error) {
	return m.orders, nil
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID int64) ([]*dom.Order, error) {
	var out []*dom.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id int64) (*dom.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, dom.ErrOrderNotFound
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int64, status dom.Status) (*dom.Order, error) {
	o, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func day(t *testing.T, d string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", d)
	require.NoError(t, err)
	return parsed
}

func seedOrders(t *testing.T) *mockOrderRepository {
	t.Helper()
	return &mockOrderRepository{orders: []*dom.Order{
		{ID: 1, OrderNo: "ORD-1001", UserID: 4, CustomerName: "Ali Khan", Phone: "0300-1111111", Status: dom.StatusPending, TotalAmount: 1348, CreatedAt: day(t, "2026-01-10"),
			Items: []dom.Item{{ProductID: 1, SellerID: 3, UnitPrice: 899, Quantity: 1}}},
		{ID: 2, OrderNo: "ORD-1002", UserID: 4, CustomerName: "Fatima Noor", Status: dom.StatusProcessing, TotalAmount: 377, CreatedAt: day(t, "2026-01-12"),
			Items: []dom.Item{{ProductID: 3, SellerID: 3, UnitPrice: 349, Quantity: 1}}},
		{ID: 3, OrderNo: "ORD-1003", UserID: 7, CustomerName: "Usman Ahmad", Status: dom.StatusShipped, TotalAmount: 2483, CreatedAt: day(t, "2026-01-14"),
			Items: []dom.Item{{ProductID: 2, UnitPrice: 2299, Quantity: 1}}},
		{ID: 4, OrderNo: "ORD-1004", UserID: 4, CustomerName: "Ayesha Malik", Status: dom.StatusDelivered, TotalAmount: 1230, CreatedAt: day(t, "2026-01-05"),
			Items: []dom.Item{{ProductID: 4, UnitPrice: 120, Quantity: 2}, {ProductID: 1, SellerID: 3, UnitPrice: 899, Quantity: 1}}},
	}}
}

func TestService_List_SearchByOrderNo(t *testing.T) {
	svc := NewService(seedOrders(t))

	st := listing.NewState()
	st.Search = "ord-1002"

	view, err := svc.List(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, 1, view.TotalFiltered)
	require.Equal(t, "Fatima Noor", view.Rows[0].CustomerName)
}

func TestService_List_NewestSortsByCreatedAt(t *testing.T) {
	svc := NewService(seedOrders(t))

	st := listing.NewState()
	st.Sort = listing.SortNewest

	view, err := svc.List(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, "ORD-1003", view.Rows[0].OrderNo)
	require.Equal(t, "ORD-1004", view.Rows[3].OrderNo)
}

func TestService_ListByUser(t *testing.T) {
	svc := NewService(seedOrders(t))

	view, err := svc.ListByUser(context.Background(), 4, listing.NewState())
	require.NoError(t, err)
	require.Equal(t, 3, view.TotalFiltered)
}

func TestService_ListBySeller(t *testing.T) {
	svc := NewService(seedOrders(t))

	view, err := svc.ListBySeller(context.Background(), 3, listing.NewState())
	require.NoError(t, err)
	require.Equal(t, 3, view.TotalFiltered)
	for _, o := range view.Rows {
		require.NotEqual(t, "ORD-1003", o.OrderNo)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc := NewService(seedOrders(t))

	o, err := svc.UpdateStatus(context.Background(), 1, dom.StatusProcessing)
	require.NoError(t, err)
	require.Equal(t, dom.StatusProcessing, o.Status)
}

func TestService_UpdateStatus_RejectsSkippedStep(t *testing.T) {
	svc := NewService(seedOrders(t))

	_, err := svc.UpdateStatus(context.Background(), 1, dom.StatusDelivered)
	require.ErrorIs(t, err, dom.ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), 1, "misplaced")
	require.ErrorIs(t, err, dom.ErrInvalidStatus)
}

func TestService_Cancel(t *testing.T) {
	svc := NewService(seedOrders(t))

	o, err := svc.Cancel(context.Background(), 4, 1)
	require.NoError(t, err)
	require.Equal(t, dom.StatusCancelled, o.Status)
}

func TestService_Cancel_ShippedOrder(t *testing.T) {
	svc := NewService(seedOrders(t))

	_, err := svc.Cancel(context.Background(), 7, 3)
	require.ErrorIs(t, err, dom.ErrInvalidTransition)
}

func TestService_Cancel_OtherUsersOrder(t *testing.T) {
	svc := NewService(seedOrders(t))

	_, err := svc.Cancel(context.Background(), 4, 3)
	require.ErrorIs(t, err, dom.ErrOrderNotFound)
}
