package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
)

var _ repository.UserRepository = (*PostgresUserRepo)(nil)

type PostgresUserRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{pool: pool}
}

func (r *PostgresUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	const q = `
INSERT INTO users (
  id, email, password_hash, name, tier, analyses_remaining, created_at, last_login_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8
) ON CONFLICT (id) DO UPDATE SET
  email=$2, password_hash=$3, name=$4, tier=$5, last_login_at=$8;`
	_, err := execSQL(ctx, r.pool, tx, q,
		u.ID, u.Email, u.PasswordHash, u.Name, string(u.Tier), u.AnalysesRemaining, u.CreatedAt, nullTime(u.LastLoginAt))
	return translateError(err)
}

func (r *PostgresUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	const q = userSelect + ` WHERE id=$1;`
	return r.scanOne(pickRow(ctx, r.pool, tx, q, id))
}

func (r *PostgresUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	const q = userSelect + ` WHERE email=$1;`
	return r.scanOne(pickRow(ctx, r.pool, tx, q, email))
}

// DecrementAnalyses floors the counter at zero on the storage side; only the
// metered tier is touched.
func (r *PostgresUserRepo) DecrementAnalyses(ctx context.Context, tx repository.Tx, userID string) error {
	const q = `
UPDATE users SET analyses_remaining = GREATEST(analyses_remaining - 1, 0)
 WHERE id=$1 AND tier='FREE';`
	_, err := execSQL(ctx, r.pool, tx, q, userID)
	return translateError(err)
}

const userSelect = `
SELECT id, email, password_hash, name, tier, analyses_remaining, created_at, COALESCE(last_login_at, 'epoch'::timestamptz)
  FROM users`

func (r *PostgresUserRepo) scanOne(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	var u model.User
	var tier string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &tier, &u.AnalysesRemaining, &u.CreatedAt, &u.LastLoginAt); err != nil {
		return nil, translateError(err)
	}
	u.Tier = model.PlanTier(tier)
	return &u, nil
}
