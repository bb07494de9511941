package user

import (
	"context"
	"strings"

	dom "github.com/primeship/primeship/internal/domain/user"
	"github.com/primeship/primeship/internal/listing"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo      dom.Repository
	passwords PasswordHasher
}

func NewService(repo dom.Repository, passwords PasswordHasher) *Service {
	return &Service{repo: repo, passwords: passwords}
}

func listConfig() listing.Config[*dom.User] {
	return listing.Config[*dom.User]{
		SearchText: func(u *dom.User) []string { return []string{u.Name, u.Email} },
		Status:     func(u *dom.User) string { return string(u.RoleCode) },
		Name:       func(u *dom.User) string { return u.Name },
	}
}

type CreateUserInput struct {
	ExecutorRole dom.RoleCode
	Name         string
	Email        string
	Password     string
	RoleCode     dom.RoleCode
}

type UpdateUserInput struct {
	ExecutorRole dom.RoleCode
	ID           int64
	Name         *string
	Email        *string
	Password     *string
	RoleCode     *dom.RoleCode
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*dom.User, error) {
	if !in.RoleCode.IsValid() {
		return nil, dom.ErrInvalidRoleCode
	}
	if !dom.CanAssignRole(in.ExecutorRole, in.RoleCode) {
		return nil, dom.ErrCannotAssignRole
	}

	roleID, err := s.repo.GetRoleIDByCode(ctx, in.RoleCode)
	if err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &dom.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: hash,
		UserRoleID:   roleID,
		RoleCode:     in.RoleCode,
	}

	return s.repo.Create(ctx, u)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*dom.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers serves the admin user table. The pipeline's status filter
// maps to the role code, so ?status=SELLER narrows to sellers.
func (s *Service) ListUsers(ctx context.Context, st listing.State) (listing.View[*dom.User], error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*dom.User]{}, err
	}
	return listConfig().Compute(users, st), nil
}

func (s *Service) UpdateUser(ctx context.Context, in UpdateUserInput) (*dom.User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	// Touching an admin account at all takes a super admin.
	if !dom.CanAssignRole(in.ExecutorRole, u.RoleCode) {
		return nil, dom.ErrCannotAssignRole
	}

	if in.RoleCode != nil {
		if !in.RoleCode.IsValid() {
			return nil, dom.ErrInvalidRoleCode
		}
		if !dom.CanAssignRole(in.ExecutorRole, *in.RoleCode) {
			return nil, dom.ErrCannotAssignRole
		}
		roleID, err := s.repo.GetRoleIDByCode(ctx, *in.RoleCode)
		if err != nil {
			return nil, err
		}
		u.UserRoleID = roleID
		u.RoleCode = *in.RoleCode
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(strings.ToLower(*in.Email))
	}
	if in.Password != nil {
		hash, err := s.passwords.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	return s.repo.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, executorRole dom.RoleCode, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !dom.CanAssignRole(executorRole, u.RoleCode) {
		return dom.ErrCannotAssignRole
	}
	return s.repo.Delete(ctx, id)
}
