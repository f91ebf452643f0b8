package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
	"resumepulse/internal/infra/metrics"
	red "resumepulse/internal/infra/redis"
)

var _ repository.UserRepository = (*userRepoCacheDecorator)(nil)

// userRepoCacheDecorator is a read-through cache over the user repository.
// Writes and quota decrements invalidate both lookup keys.
type userRepoCacheDecorator struct {
	inner repository.UserRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewUserRepoCacheDecorator(inner repository.UserRepository, cache red.RedisClient, ttl time.Duration) repository.UserRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &userRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func (d *userRepoCacheDecorator) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	_ = d.cache.Del(ctx, keyUserID(u.ID), keyUserEmail(u.Email))
	return d.inner.Save(ctx, tx, u)
}

func (d *userRepoCacheDecorator) DecrementAnalyses(ctx context.Context, tx repository.Tx, userID string) error {
	if u, err := d.inner.FindByID(ctx, tx, userID); err == nil {
		_ = d.cache.Del(ctx, keyUserID(u.ID), keyUserEmail(u.Email))
	} else {
		_ = d.cache.Del(ctx, keyUserID(userID))
	}
	return d.inner.DecrementAnalyses(ctx, tx, userID)
}

func (d *userRepoCacheDecorator) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	if u := d.lookup(ctx, keyUserID(id)); u != nil {
		return u, nil
	}
	u, err := d.inner.FindByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	d.fill(ctx, u)
	return u, nil
}

func (d *userRepoCacheDecorator) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	if u := d.lookup(ctx, keyUserEmail(email)); u != nil {
		return u, nil
	}
	u, err := d.inner.FindByEmail(ctx, tx, email)
	if err != nil {
		return nil, err
	}
	d.fill(ctx, u)
	return u, nil
}

func (d *userRepoCacheDecorator) lookup(ctx context.Context, key string) *model.User {
	val, err := d.cache.Get(ctx, key)
	if err != nil {
		metrics.IncCacheRequest("user", "miss")
		return nil
	}
	var u model.User
	if json.Unmarshal([]byte(val), &u) != nil {
		metrics.IncCacheRequest("user", "miss")
		return nil
	}
	metrics.IncCacheRequest("user", "hit")
	return &u
}

// fill warms both keys so FindByID and FindByEmail share one entry.
func (d *userRepoCacheDecorator) fill(ctx context.Context, u *model.User) {
	if u == nil {
		return
	}
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	_ = d.cache.Set(ctx, keyUserID(u.ID), b, d.ttl)
	_ = d.cache.Set(ctx, keyUserEmail(u.Email), b, d.ttl)
}

func keyUserID(id string) string       { return fmt.Sprintf("user:id:%s", id) }
func keyUserEmail(email string) string { return fmt.Sprintf("user:email:%s", email) }
