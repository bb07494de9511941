package userrole

import (
	domuser "github.com/primeship/primeship/internal/domain/user"
)

type UserRole struct {
	ID          int64
	Code        domuser.RoleCode
	Name        string
	Description string
	IsSystem    bool
}
