// Package cache wraps Redis for response caching, the embedding cache, and
// the affinity batch lock. A missing or unreachable Redis degrades to a
// bypass: reads miss, writes are dropped.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"talent-optimizer/internal/config"
)

const (
	embeddingKeyPrefix = "emb:"
	batchLockKey       = "affinity:batch:lock"

	// RecommendationTTL bounds how stale a cached ranking may get.
	RecommendationTTL = 10 * time.Minute
	embeddingTTL      = 24 * time.Hour
)

type Redis struct {
	client *redis.Client
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, bypassing cache", zap.Error(err))
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing cache", zap.Error(err))
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// GetEmbedding looks up a cached vector by content hash.
func (r *Redis) GetEmbedding(ctx context.Context, text string) ([]float32, bool) {
	var vec []float32
	ok, err := r.GetJSON(ctx, embeddingKey(text), &vec)
	if err != nil || !ok {
		return nil, false
	}
	return vec, true
}

// PutEmbedding stores a vector under the content hash of its source text.
func (r *Redis) PutEmbedding(ctx context.Context, text string, vec []float32) {
	_ = r.SetJSON(ctx, embeddingKey(text), vec, embeddingTTL)
}

// AcquireBatchLock claims the affinity batch lock for ttl. Returns false
// when another run holds it. Without Redis the lock is granted so a single
// instance keeps working.
func (r *Redis) AcquireBatchLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	if r.isUnavailable() {
		return true, nil
	}
	ok, err := r.client.SetNX(ctx, batchLockKey, owner, ttl).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return true, nil
	}
	return ok, nil
}

// ReleaseBatchLock drops the batch lock.
func (r *Redis) ReleaseBatchLock(ctx context.Context) {
	_ = r.Delete(ctx, batchLockKey)
}

func embeddingKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return embeddingKeyPrefix + hex.EncodeToString(sum[:])
}
