// Package redis holds a ResetCodes implementation where a code's expiry is
// the key's TTL, so expired codes disappear without housekeeping.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "notitech:reset:"

// Options configure the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// ResetCodes stores one hash per email under Prefix+email.
type ResetCodes struct {
	client *goredis.Client
	prefix string
}

// NewResetCodes connects and pings the server.
func NewResetCodes(ctx context.Context, opts Options) (*ResetCodes, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewResetCodesWithClient(client, opts.Prefix), nil
}

// NewResetCodesWithClient wraps an existing client.
func NewResetCodesWithClient(client *goredis.Client, prefix string) *ResetCodes {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &ResetCodes{client: client, prefix: prefix}
}

func (r *ResetCodes) key(email string) string { return r.prefix + email }

// UpsertResetCode replaces the hash and its TTL in one MULTI/EXEC.
func (r *ResetCodes) UpsertResetCode(ctx context.Context, rc domain.ResetCode) error {
	k := r.key(rc.Email)
	_, err := r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, k)
		p.HSet(ctx, k,
			"code_hash", rc.CodeHash,
			"expires_at", strconv.FormatInt(rc.ExpiresAt.UnixMilli(), 10),
			"created_at", strconv.FormatInt(rc.CreatedAt.UnixMilli(), 10),
		)
		p.PExpireAt(ctx, k, rc.ExpiresAt)
		return nil
	})
	return err
}

func (r *ResetCodes) GetResetCode(ctx context.Context, email string) (domain.ResetCode, error) {
	vals, err := r.client.HGetAll(ctx, r.key(email)).Result()
	if err != nil {
		return domain.ResetCode{}, err
	}
	if len(vals) == 0 {
		return domain.ResetCode{}, store.ErrNotFound
	}

	expires, err := parseMillis(vals["expires_at"])
	if err != nil {
		return domain.ResetCode{}, err
	}
	created, err := parseMillis(vals["created_at"])
	if err != nil {
		return domain.ResetCode{}, err
	}

	return domain.ResetCode{
		Email:     email,
		CodeHash:  vals["code_hash"],
		ExpiresAt: expires,
		CreatedAt: created,
	}, nil
}

// DeleteResetCode is a single DEL, so of two concurrent callers only one
// sees a count of 1.
func (r *ResetCodes) DeleteResetCode(ctx context.Context, email string) (int64, error) {
	return r.client.Del(ctx, r.key(email)).Result()
}

// DeleteExpiredResetCodes is a no-op: Redis evicts expired keys itself.
func (r *ResetCodes) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// Ping checks the connection; used by the readiness probe.
func (r *ResetCodes) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *ResetCodes) Close() error { return r.client.Close() }

func parseMillis(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("redis: reset code missing timestamp")
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

var _ store.ResetCodes = (*ResetCodes)(nil)
