package security

import "golang.org/x/crypto/bcrypt"

// BcryptService hashes account passwords for storage and checks login
// attempts against the stored hash. It backs both registration and the
// admin user endpoints.
type BcryptService struct {
	cost int
}

// NewBcryptService builds a hasher with the given work factor; zero
// selects bcrypt's default cost.
func NewBcryptService(cost int) *BcryptService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

func (s *BcryptService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns bcrypt's mismatch error as is; the auth service folds
// every failure into an invalid-credential response.
func (s *BcryptService) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
