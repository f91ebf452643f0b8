package repository

import (
	"context"

	"resumepulse/internal/domain/model"
)

type UserRepository interface {
	Save(ctx context.Context, tx Tx, u *model.User) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.User, error)
	FindByEmail(ctx context.Context, tx Tx, email string) (*model.User, error)
	// DecrementAnalyses atomically decrements the remaining-analyses counter
	// by one, never below zero. Unmetered tiers are unaffected.
	DecrementAnalyses(ctx context.Context, tx Tx, userID string) error
}
