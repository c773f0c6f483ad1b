package user

import (
	"context"

	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/user/dto"
)

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	// EnsureAdmin seeds the initial superadmin account when the users table
	// is empty. Called once at boot.
	EnsureAdmin(ctx context.Context, email, password string) error
}
