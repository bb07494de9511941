package userrole

import (
	"context"
	"strings"

	domuser "github.com/primeship/primeship/internal/domain/user"
	domrole "github.com/primeship/primeship/internal/domain/userrole"
	"github.com/primeship/primeship/internal/listing"
)

// UserLister is the slice of the user repository needed to tell whether
// a role is still assigned to anyone.
type UserLister interface {
	List(ctx context.Context) ([]*domuser.User, error)
}

type Service struct {
	repo  domrole.Repository
	users UserLister
}

func NewService(repo domrole.Repository, users UserLister) *Service {
	return &Service{repo: repo, users: users}
}

func listConfig() listing.Config[*domrole.UserRole] {
	return listing.Config[*domrole.UserRole]{
		SearchText: func(r *domrole.UserRole) []string {
			return []string{string(r.Code), r.Name, r.Description}
		},
		Name: func(r *domrole.UserRole) string { return r.Name },
	}
}

type CreateInput struct {
	Code        string
	Name        string
	Description string
}

type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domrole.UserRole, error) {
	code, err := domuser.ParseRoleCode(in.Code)
	if err != nil {
		return nil, err
	}

	role := &domrole.UserRole{
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}

	return s.repo.Create(ctx, role)
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*domrole.UserRole, error) {
	role, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, domrole.ErrRoleImmutable
	}

	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}

	return s.repo.Update(ctx, role)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return domrole.ErrRoleImmutable
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.UserRoleID == id {
			return domrole.ErrRoleInUse
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domrole.UserRole, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, st listing.State) (listing.View[*domrole.UserRole], error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return listing.View[*domrole.UserRole]{}, err
	}
	return listConfig().Compute(roles, st), nil
}
