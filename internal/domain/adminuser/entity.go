package adminuser

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account for the admin panel. Customers never
// have accounts here; consumer checkout is anonymous.
type AdminUser struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdminUser(email Email, passwordHash string, role Role) *AdminUser {
	return &AdminUser{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructAdminUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *AdminUser {
	return &AdminUser{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *AdminUser) ID() uuid.UUID         { return u.id }
func (u *AdminUser) Email() Email          { return u.email }
func (u *AdminUser) PasswordHash() string  { return u.passwordHash }
func (u *AdminUser) Role() Role            { return u.role }
func (u *AdminUser) LastLogin() *time.Time { return u.lastLogin }
func (u *AdminUser) IsActive() bool        { return u.isActive }
func (u *AdminUser) CreatedAt() time.Time  { return u.createdAt }
func (u *AdminUser) UpdatedAt() time.Time  { return u.updatedAt }
