package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"parkcompare/internal/domain/adminuser"
	reqdto "parkcompare/internal/handler/dto/request"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/pkg/errs"
	"parkcompare/internal/pkg/jwt"
	"parkcompare/internal/pkg/password"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Role   adminuser.Role
	Token  string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*adminuser.AdminUser, error)
}

type authCommandsImpl struct {
	users      AdminUserReader
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(users AdminUserReader, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	user, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(user.ID(), user.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.users.UpdateLastLogin(ctx, user.ID(), a.clock.Now()); err != nil {
		// Not critical; the login itself succeeded.
		a.logger.Warn("failed to update last login",
			slog.String("user_id", user.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return &LoginResult{
		UserID: user.ID(),
		Role:   user.Role(),
		Token:  token,
	}, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*adminuser.AdminUser, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !user.IsActive() {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials adminuser.Credentials) (*adminuser.AdminUser, error) {
	user, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(user.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
