package userrole

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "github.com/primeship/primeship/internal/domain/user"
	domrole "github.com/primeship/primeship/internal/domain/userrole"
	"github.com/primeship/primeship/internal/listing"
)

type mockRoleRepository struct {
	roles   []*domrole.UserRole
	deleted bool
}

func (m *mockRoleRepository) Create(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	role.ID = int64(len(m.roles) + 1)
	m.roles = append(m.roles, role)
	return role, nil
}

func (m *mockRoleRepository) Update(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	return role, nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, id int64) error {
	m.deleted = true
	return nil
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id int64) (*domrole.UserRole, error) {
	for _, role := range m.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, domrole.ErrRoleNotFound
}

func (m *mockRoleRepository) GetByCode(ctx context.Context, code string) (*domrole.UserRole, error) {
	return nil, domrole.ErrRoleNotFound
}

func (m *mockRoleRepository) List(ctx context.Context) ([]*domrole.UserRole, error) {
	return m.roles, nil
}

type mockUserLister struct {
	users []*domuser.User
}

func (m mockUserLister) List(ctx context.Context) ([]*domuser.User, error) {
	return m.users, nil
}

func TestService_Create_NormalizesCode(t *testing.T) {
	repo := &mockRoleRepository{}
	svc := NewService(repo, mockUserLister{})

	role, err := svc.Create(context.Background(), CreateInput{Code: " support_agent ", Name: "Support Agent"})
	require.NoError(t, err)
	require.Equal(t, domuser.RoleCode("SUPPORT_AGENT"), role.Code)
}

func TestService_Create_RejectsBadCode(t *testing.T) {
	svc := NewService(&mockRoleRepository{}, mockUserLister{})

	_, err := svc.Create(context.Background(), CreateInput{Code: "no spaces!", Name: "Broken"})
	require.ErrorIs(t, err, domuser.ErrInvalidRoleCode)
}

func TestService_Update_SystemRoleImmutable(t *testing.T) {
	repo := &mockRoleRepository{roles: []*domrole.UserRole{
		{ID: 1, Code: domuser.RoleCodeAdmin, Name: "Admin", IsSystem: true},
	}}
	svc := NewService(repo, mockUserLister{})

	name := "Renamed"
	_, err := svc.Update(context.Background(), UpdateInput{ID: 1, Name: &name})
	require.ErrorIs(t, err, domrole.ErrRoleImmutable)
}

func TestService_Delete_BlockedWhenAssigned(t *testing.T) {
	repo := &mockRoleRepository{roles: []*domrole.UserRole{
		{ID: 5, Code: "SUPPORT_AGENT", Name: "Support Agent"},
	}}
	users := mockUserLister{users: []*domuser.User{{ID: 1, UserRoleID: 5}}}
	svc := NewService(repo, users)

	err := svc.Delete(context.Background(), 5)
	require.ErrorIs(t, err, domrole.ErrRoleInUse)
	require.False(t, repo.deleted)
}

func TestService_Delete_UnusedCustomRole(t *testing.T) {
	repo := &mockRoleRepository{roles: []*domrole.UserRole{
		{ID: 5, Code: "SUPPORT_AGENT", Name: "Support Agent"},
	}}
	svc := NewService(repo, mockUserLister{})

	require.NoError(t, svc.Delete(context.Background(), 5))
	require.True(t, repo.deleted)
}

func TestService_List_Search(t *testing.T) {
	repo := &mockRoleRepository{roles: []*domrole.UserRole{
		{ID: 1, Code: domuser.RoleCodeAdmin, Name: "Admin", IsSystem: true},
		{ID: 2, Code: domuser.RoleCodeSeller, Name: "Seller", IsSystem: true},
	}}
	svc := NewService(repo, mockUserLister{})

	st := listing.NewState()
	st.Search = "sell"

	view, err := svc.List(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, 1, view.TotalFiltered)
	require.Equal(t, "Seller", view.Rows[0].Name)
}
