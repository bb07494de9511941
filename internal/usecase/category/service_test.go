package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dom "github.com/primeship/primeship/internal/domain/category"
	"github.com/primeship/primeship/internal/listing"
)

type mockCategoryRepository struct {
	categories []*dom.Category
	deleted    bool
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	c.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, c)
	return c, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	return c, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.deleted = true
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*dom.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, dom.ErrCategoryNotFound
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*dom.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, dom.ErrCategoryNotFound
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*dom.Category, error) {
	return m.categories, nil
}

type mockProductCounter struct {
	count int64
}

func (m mockProductCounter) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return m.count, nil
}

func TestService_Create_GeneratesSlug(t *testing.T) {
	repo := &mockCategoryRepository{}
	svc := NewService(repo, mockProductCounter{})

	c, err := svc.Create(context.Background(), &dom.Category{Name: "Home Appliances", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, "home-appliances", c.Slug)
}

func TestService_Create_RejectsBadSlug(t *testing.T) {
	svc := NewService(&mockCategoryRepository{}, mockProductCounter{})

	_, err := svc.Create(context.Background(), &dom.Category{Name: "Audio", Slug: "Not A Slug!"})
	require.ErrorIs(t, err, dom.ErrCategoryInvalidSlug)
}

func TestService_Create_EmptyName(t *testing.T) {
	svc := NewService(&mockCategoryRepository{}, mockProductCounter{})

	_, err := svc.Create(context.Background(), &dom.Category{Name: "   "})
	require.ErrorIs(t, err, dom.ErrCategoryInvalidName)
}

func TestService_Update_RejectsSelfParent(t *testing.T) {
	repo := &mockCategoryRepository{categories: []*dom.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones", IsActive: true},
	}}
	svc := NewService(repo, mockProductCounter{})

	self := int64(1)
	_, err := svc.Update(context.Background(), &dom.Category{ID: 1, ParentID: &self})
	require.ErrorIs(t, err, dom.ErrInvalidParent)
}

func TestService_Delete_BlockedWhenInUse(t *testing.T) {
	repo := &mockCategoryRepository{categories: []*dom.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones"},
	}}
	svc := NewService(repo, mockProductCounter{count: 3})

	err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, dom.ErrCategoryInUse)
	require.False(t, repo.deleted)
}

func TestService_Delete_EmptyCategory(t *testing.T) {
	repo := &mockCategoryRepository{categories: []*dom.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones"},
	}}
	svc := NewService(repo, mockProductCounter{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.True(t, repo.deleted)
}

func TestService_ListActive(t *testing.T) {
	repo := &mockCategoryRepository{categories: []*dom.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones", IsActive: true},
		{ID: 2, Name: "Accessories", Slug: "accessories"},
	}}
	svc := NewService(repo, mockProductCounter{})

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Smartphones", active[0].Name)
}

func TestService_Search_FiltersAndPages(t *testing.T) {
	repo := &mockCategoryRepository{categories: []*dom.Category{
		{ID: 1, Name: "Smartphones", Slug: "smartphones", IsActive: true},
		{ID: 2, Name: "Smart Home", Slug: "smart-home", IsActive: true},
		{ID: 3, Name: "Accessories", Slug: "accessories"},
	}}
	svc := NewService(repo, mockProductCounter{})

	st := listing.NewState()
	st.Search = "smart"
	view, err := svc.Search(context.Background(), st)
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)

	st = listing.NewState()
	st.Status = "inactive"
	view, err = svc.Search(context.Background(), st)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.Equal(t, "Accessories", view.Rows[0].Name)
}
