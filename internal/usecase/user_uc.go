package usecase

import (
	"context"
	"fmt"
	"strings"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
	"resumepulse/internal/infra/security"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ UserUseCase = (*userUC)(nil)

type UserUseCase interface {
	Register(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userUC struct {
	users  repository.UserRepository
	tokens *security.TokenService
	log    *zerolog.Logger
}

func NewUserUseCase(users repository.UserRepository, tokens *security.TokenService, log *zerolog.Logger) *userUC {
	return &userUC{users: users, tokens: tokens, log: log}
}

func (u *userUC) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return nil, "", domain.ErrInvalidArgument
	}
	if existing, err := u.users.FindByEmail(ctx, nil, email); err == nil && !existing.IsZero() {
		return nil, "", domain.ErrAlreadyExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user, err := model.NewUser(email, hash, name)
	if err != nil {
		return nil, "", err
	}
	if err := u.users.Save(ctx, nil, user); err != nil {
		return nil, "", fmt.Errorf("save user: %w", err)
	}

	token, err := u.tokens.Mint(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("mint token: %w", err)
	}
	u.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

func (u *userUC) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.FindByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	user.Touch()
	if err := u.users.Save(ctx, nil, user); err != nil {
		u.log.Warn().Err(err).Str("user_id", user.ID).Msg("could not update last login time")
	}

	token, err := u.tokens.Mint(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("mint token: %w", err)
	}
	return user, token, nil
}

func (u *userUC) Get(ctx context.Context, id string) (*model.User, error) {
	return u.users.FindByID(ctx, nil, id)
}
