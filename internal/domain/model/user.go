package model

import (
	"strings"
	"time"

	"resumepulse/internal/domain"

	"github.com/google/uuid"
)

type PlanTier string

const (
	PlanTierFree PlanTier = "FREE"
	PlanTierPro  PlanTier = "PRO"
)

// DefaultFreeAnalyses is the analysis allotment granted to new FREE-tier users.
const DefaultFreeAnalyses = 3

// User is a domain entity representing a registered account.
// AnalysesRemaining gates analysis submission for the metered (FREE) tier only.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Name              string
	Tier              PlanTier
	AnalysesRemaining int
	CreatedAt         time.Time
	LastLoginAt       time.Time
}

func NewUser(email, passwordHash, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidArgument
	}
	if passwordHash == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              name,
		Tier:              PlanTierFree,
		AnalysesRemaining: DefaultFreeAnalyses,
		CreatedAt:         time.Now(),
	}, nil
}

func (u *User) IsZero() bool { return u == nil || u.ID == "" }

// Metered reports whether the user's plan counts analyses against a quota.
func (u *User) Metered() bool { return u.Tier == PlanTierFree }

func (u *User) Touch() { u.LastLoginAt = time.Now() }
