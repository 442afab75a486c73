package response

import (
	"time"

	"parkcompare/internal/domain/adminuser"
	"parkcompare/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:  r.Token,
		UserID: r.UserID,
		Role:   r.Role.String(),
	}
}

type AdminUserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func FromAdminUser(u *adminuser.AdminUser) *AdminUserResponse {
	return &AdminUserResponse{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		LastLogin: u.LastLogin(),
	}
}
