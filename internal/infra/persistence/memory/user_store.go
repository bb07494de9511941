package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domuser "github.com/primeship/primeship/internal/domain/user"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[int64]*domuser.User
	roles *RoleStore
}

func NewUserStore(roles *RoleStore) *UserStore {
	return &UserStore{
		users: make(map[int64]*domuser.User),
		roles: roles,
	}
}

func (s *UserStore) nextID() int64 {
	var max int64
	for id := range s.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func cloneUser(u *domuser.User) *domuser.User {
	c := *u
	return &c
}

func (s *UserStore) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, email) {
			return nil, domuser.ErrEmailAlreadyUsed
		}
	}

	c := cloneUser(u)
	c.ID = s.nextID()
	c.Email = email
	s.users[c.ID] = c
	return cloneUser(c), nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domuser.ErrUserNotFound
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (s *UserStore) List(ctx context.Context) ([]*domuser.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domuser.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return nil, domuser.ErrUserNotFound
	}
	for _, other := range s.users {
		if other.ID != u.ID && strings.EqualFold(other.Email, u.Email) {
			return nil, domuser.ErrEmailAlreadyUsed
		}
	}

	c := cloneUser(u)
	c.Email = strings.ToLower(c.Email)
	s.users[c.ID] = c
	return cloneUser(c), nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domuser.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *UserStore) GetRoleIDByCode(ctx context.Context, code domuser.RoleCode) (int64, error) {
	role, err := s.roles.GetByCode(ctx, string(code))
	if err != nil {
		return 0, err
	}
	return role.ID, nil
}
