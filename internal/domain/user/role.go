package user

import (
	"errors"
	"regexp"
	"strings"
)

type RoleCode string

const (
	RoleCodeSuperAdmin RoleCode = "SUPER_ADMIN"
	RoleCodeAdmin      RoleCode = "ADMIN"
	RoleCodeSeller     RoleCode = "SELLER"
	RoleCodeCustomer   RoleCode = "CUSTOMER"
)

var roleCodeRegexp = regexp.MustCompile(`^[A-Z0-9_]{3,64}$`)

func (c RoleCode) IsValid() bool {
	return roleCodeRegexp.MatchString(string(c))
}

func (c RoleCode) IsSuperAdmin() bool {
	return c == RoleCodeSuperAdmin
}

func (c RoleCode) IsAdmin() bool {
	return c == RoleCodeAdmin
}

var ErrInvalidRoleCode = errors.New("invalid role code")

func ParseRoleCode(s string) (RoleCode, error) {
	c := RoleCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidRoleCode
	}
	return c, nil
}

// CanAssignRole restricts who may hand out which role: only a super admin
// can create or promote admins; everything below that is open to both
// admin tiers.
func CanAssignRole(executorRole RoleCode, targetRole RoleCode) bool {
	if targetRole == RoleCodeAdmin || targetRole == RoleCodeSuperAdmin {
		return executorRole == RoleCodeSuperAdmin
	}
	return true
}
