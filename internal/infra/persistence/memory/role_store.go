package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domrole "github.com/primeship/primeship/internal/domain/userrole"
)

type RoleStore struct {
	mu    sync.RWMutex
	roles map[int64]*domrole.UserRole
}

func NewRoleStore() *RoleStore {
	return &RoleStore{roles: make(map[int64]*domrole.UserRole)}
}

func (s *RoleStore) nextID() int64 {
	var max int64
	for id := range s.roles {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func cloneRole(r *domrole.UserRole) *domrole.UserRole {
	c := *r
	return &c
}

func (s *RoleStore) Create(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.roles {
		if existing.Code == role.Code {
			return nil, domrole.ErrRoleCodeExisted
		}
	}

	c := cloneRole(role)
	c.ID = s.nextID()
	s.roles[c.ID] = c
	return cloneRole(c), nil
}

func (s *RoleStore) Update(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[role.ID]; !ok {
		return nil, domrole.ErrRoleNotFound
	}

	c := cloneRole(role)
	s.roles[c.ID] = c
	return cloneRole(c), nil
}

func (s *RoleStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[id]; !ok {
		return domrole.ErrRoleNotFound
	}
	delete(s.roles, id)
	return nil
}

func (s *RoleStore) GetByID(ctx context.Context, id int64) (*domrole.UserRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.roles[id]; ok {
		return cloneRole(r), nil
	}
	return nil, domrole.ErrRoleNotFound
}

func (s *RoleStore) GetByCode(ctx context.Context, code string) (*domrole.UserRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.roles {
		if strings.EqualFold(string(r.Code), code) {
			return cloneRole(r), nil
		}
	}
	return nil, domrole.ErrRoleNotFound
}

func (s *RoleStore) List(ctx context.Context) ([]*domrole.UserRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]*domrole.UserRole, 0, len(s.roles))
	for _, r := range s.roles {
		roles = append(roles, cloneRole(r))
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}
