package pg

import (
	"context"
	"time"

	"parkcompare/internal/domain/adminuser"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminUserRepository struct {
	db *pgxpool.Pool
}

func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

const adminUserColumns = `id, email, password_hash, role, last_login, is_active, created_at, updated_at`

func (r *AdminUserRepository) Create(ctx context.Context, u *adminuser.AdminUser) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return wrapErr("failed to create admin user", err)
	}
	return nil
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email adminuser.Email) (*adminuser.AdminUser, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email.Value())
	u, err := scanAdminUser(row)
	if err != nil {
		return nil, wrapErr("failed to find admin user by email", err)
	}
	return u, nil
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*adminuser.AdminUser, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)
	u, err := scanAdminUser(row)
	if err != nil {
		return nil, wrapErr("failed to find admin user", err)
	}
	return u, nil
}

func (r *AdminUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `UPDATE admin_users SET last_login = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return wrapErr("failed to update last login", err)
	}
	if cmd.RowsAffected() == 0 {
		return wrapErr("admin user not found", pgx.ErrNoRows)
	}
	return nil
}

func scanAdminUser(row pgx.Row) (*adminuser.AdminUser, error) {
	var (
		id                   uuid.UUID
		email, hash, role    string
		lastLogin            *time.Time
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &email, &hash, &role, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	emailVO, err := adminuser.NewEmail(email)
	if err != nil {
		return nil, err
	}
	roleVO, err := adminuser.NewRole(role)
	if err != nil {
		return nil, err
	}

	return adminuser.ReconstructAdminUser(id, emailVO, hash, roleVO, lastLogin, isActive, createdAt, updatedAt), nil
}
