package mysql

import (
	"context"
	"database/sql"
	"errors"

	domrole "github.com/primeship/primeship/internal/domain/userrole"
)

type UserRoleRepository struct {
	db *sql.DB
}

func NewUserRoleRepository(db *sql.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

var _ domrole.Repository = (*UserRoleRepository)(nil)

func (r *UserRoleRepository) Create(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO user_roles (code, name, description, is_system)
        VALUES (?, ?, ?, ?)
    `, role.Code, role.Name, role.Description, role.IsSystem)
	if err != nil {
		if isDuplicateKey(err, "code") {
			return nil, domrole.ErrRoleCodeExisted
		}
		return nil, err
	}
	role.ID, _ = res.LastInsertId()
	return role, nil
}

func (r *UserRoleRepository) Update(ctx context.Context, role *domrole.UserRole) (*domrole.UserRole, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE user_roles SET code = ?, name = ?, description = ?
        WHERE id = ?
    `, role.Code, role.Name, role.Description, role.ID)
	if err != nil {
		if isDuplicateKey(err, "code") {
			return nil, domrole.ErrRoleCodeExisted
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, role.ID); err != nil {
			return nil, err
		}
	}
	return role, nil
}

func (r *UserRoleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_roles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domrole.ErrRoleNotFound
	}
	return nil
}

func (r *UserRoleRepository) GetByID(ctx context.Context, id int64) (*domrole.UserRole, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, code, name, description, is_system
        FROM user_roles WHERE id = ?
    `, id)

	var role domrole.UserRole
	if err := row.Scan(&role.ID, &role.Code, &role.Name, &role.Description, &role.IsSystem); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domrole.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *UserRoleRepository) GetByCode(ctx context.Context, code string) (*domrole.UserRole, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, code, name, description, is_system
        FROM user_roles WHERE code = ?
    `, code)

	var role domrole.UserRole
	if err := row.Scan(&role.ID, &role.Code, &role.Name, &role.Description, &role.IsSystem); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domrole.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *UserRoleRepository) List(ctx context.Context) ([]*domrole.UserRole, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, code, name, description, is_system
        FROM user_roles ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*domrole.UserRole
	for rows.Next() {
		var role domrole.UserRole
		if err := rows.Scan(&role.ID, &role.Code, &role.Name, &role.Description, &role.IsSystem); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}
