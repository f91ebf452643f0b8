//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/infra/security"
	"resumepulse/internal/usecase"
)

func newTestTokens(t *testing.T) *security.TokenService {
	t.Helper()
	tokens, err := security.NewTokenService("unit-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens(t)

	t.Run("should register a new user with the free allotment", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())

		user, token, err := uc.Register(ctx, "Dana@Example.com", "hunter22", "Dana")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if token == "" {
			t.Error("expected a token to be minted")
		}
		if user.Email != "dana@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
		if user.Tier != model.PlanTierFree {
			t.Errorf("expected FREE tier, got %s", user.Tier)
		}
		if user.AnalysesRemaining != model.DefaultFreeAnalyses {
			t.Errorf("expected %d analyses, got %d", model.DefaultFreeAnalyses, user.AnalysesRemaining)
		}
		if user.PasswordHash == "hunter22" {
			t.Error("password must not be stored in the clear")
		}
	})

	t.Run("should reject a short password", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())

		_, _, err := uc.Register(ctx, "dana@example.com", "short", "")
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got: %v", err)
		}
	})

	t.Run("should reject a duplicate email", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())

		if _, _, err := uc.Register(ctx, "dana@example.com", "hunter22", ""); err != nil {
			t.Fatalf("first register failed: %v", err)
		}
		_, _, err := uc.Register(ctx, "dana@example.com", "hunter22", "")
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got: %v", err)
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens(t)

	t.Run("should login with correct credentials and touch last login", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())
		registered, _, err := uc.Register(ctx, "dana@example.com", "hunter22", "")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}

		user, token, err := uc.Login(ctx, "dana@example.com", "hunter22")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("expected user %s, got %s", registered.ID, user.ID)
		}
		if user.LastLoginAt.IsZero() {
			t.Error("expected LastLoginAt to be set")
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			t.Fatalf("token did not verify: %v", err)
		}
		if subject != user.ID {
			t.Errorf("token subject = %s, want %s", subject, user.ID)
		}
	})

	t.Run("should return invalid credentials for a wrong password", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())
		if _, _, err := uc.Register(ctx, "dana@example.com", "hunter22", ""); err != nil {
			t.Fatalf("register failed: %v", err)
		}

		_, _, err := uc.Login(ctx, "dana@example.com", "wrong-password")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("should return invalid credentials for an unknown email", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, tokens, newTestLogger())

		_, _, err := uc.Login(ctx, "nobody@example.com", "hunter22")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
		}
	})
}
