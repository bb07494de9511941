package auth

import (
	"context"
	"strings"

	domuser "github.com/primeship/primeship/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Claims struct {
	UserID   int64
	RoleCode domuser.RoleCode
	Email    string
	Name     string
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo  domuser.Repository
	passwords PasswordHasher
	tokens    TokenService
}

func NewService(
	userRepo domuser.Repository,
	passwords PasswordHasher,
	tokens TokenService,
) *Service {
	return &Service{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.passwords.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  u,
	}, nil
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a customer account. Staff and seller accounts are
// provisioned by admins through the user service.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domuser.ErrEmailAlreadyUsed
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	roleID, err := s.userRepo.GetRoleIDByCode(ctx, domuser.RoleCodeCustomer)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.Create(ctx, &domuser.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		UserRoleID:   roleID,
		RoleCode:     domuser.RoleCodeCustomer,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}
