package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lusotech/storefront/internal/auth"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/user"
	"github.com/lusotech/storefront/internal/user/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo     user.Repository
	secret   string
	tokenTTL time.Duration
	logger   logger.Logger
}

func NewUserUseCase(repo user.Repository, secret string, tokenTTL time.Duration, log logger.Logger) user.UseCase {
	return &userUseCase{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   log,
	}
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error) {
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Same error as a bad password so the endpoint doesn't leak which
		// emails exist.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := auth.MintToken(u, uc.secret, uc.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{Token: token, User: u}, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*model.User, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	if input.Name == "" {
		return nil, user.ErrNameRequired
	}
	if input.Email == "" {
		return nil, user.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, user.ErrPasswordRequired
	}

	role := input.Role
	if role == "" {
		role = model.RoleAdmin
	}
	if role != model.RoleAdmin && role != model.RoleSuperadmin {
		return nil, user.ErrInvalidRole
	}

	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &model.User{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	if input.Name == "" {
		return nil, user.ErrNameRequired
	}
	if input.Email == "" {
		return nil, user.ErrEmailRequired
	}

	if u.Email != input.Email {
		existing, err := uc.repo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, user.ErrEmailTaken
		}
	}

	if input.Role != "" {
		if input.Role != model.RoleAdmin && input.Role != model.RoleSuperadmin {
			return nil, user.ErrInvalidRole
		}
		u.Role = input.Role
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	u.Name = input.Name
	u.Email = input.Email
	u.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	if auth.GetUserID(ctx) == id {
		return user.ErrSelfDelete
	}

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrNotFound
	}

	return uc.repo.Delete(ctx, id)
}

func (uc *userUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		uc.logger.Warn("users table is empty and ADMIN_PASSWORD is not set; no admin account seeded")
		return nil
	}

	_, err = uc.CreateUser(ctx, &dto.CreateUserInput{
		Name:     "Administrador",
		Email:    email,
		Password: password,
		Role:     model.RoleSuperadmin,
	})
	if err != nil {
		return err
	}

	uc.logger.Info("seeded initial superadmin account", zap.String("email", email))
	return nil
}
