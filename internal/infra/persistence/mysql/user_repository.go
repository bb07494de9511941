package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domuser "github.com/primeship/primeship/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ domuser.Repository = (*UserRepository)(nil)

const userColumns = `u.id, u.name, u.email, u.password_hash, u.user_role_id, r.code`

func scanUser(row interface{ Scan(dest ...any) error }) (*domuser.User, error) {
	var u domuser.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.UserRoleID, &u.RoleCode); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO users (name, email, password_hash, user_role_id)
        VALUES (?, ?, ?, ?)
    `, u.Name, strings.ToLower(u.Email), u.PasswordHash, u.UserRoleID)
	if err != nil {
		if isDuplicateKey(err, "email") {
			return nil, domuser.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	u.ID, _ = res.LastInsertId()
	return r.GetByID(ctx, u.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+userColumns+`
        FROM users u JOIN user_roles r ON r.id = u.user_role_id
        WHERE u.id = ?
    `, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domuser.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+userColumns+`
        FROM users u JOIN user_roles r ON r.id = u.user_role_id
        WHERE u.email = ?
    `, strings.ToLower(email))
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domuser.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]*domuser.User, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT `+userColumns+`
        FROM users u JOIN user_roles r ON r.id = u.user_role_id
        ORDER BY u.id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domuser.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE users SET name = ?, email = ?, password_hash = ?, user_role_id = ?
        WHERE id = ?
    `, u.Name, strings.ToLower(u.Email), u.PasswordHash, u.UserRoleID, u.ID)
	if err != nil {
		if isDuplicateKey(err, "email") {
			return nil, domuser.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, u.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetRoleIDByCode(ctx context.Context, code domuser.RoleCode) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM user_roles WHERE code = ?`, string(code)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domuser.ErrCannotAssignRole
	}
	return id, err
}
