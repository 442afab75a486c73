package request

import (
	"parkcompare/internal/domain/adminuser"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (adminuser.Credentials, error) {
	return adminuser.NewCredentials(r.Email, r.Password)
}
