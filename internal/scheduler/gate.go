package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segyhp/accrual-engine/internal/config"
)

// Gate rate-limits sweeps: Allow returns true at most once per interval. Release reopens the gate
// so a failed sweep can be retried before the interval elapses.
type Gate interface {
	Allow(ctx context.Context, now time.Time) (bool, error)
	Release(ctx context.Context) error
}

// MemoryGate keeps the last run instant in process memory.
type MemoryGate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func NewMemoryGate(interval time.Duration) *MemoryGate {
	return &MemoryGate{interval: interval}
}

func (g *MemoryGate) Allow(_ context.Context, now time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false, nil
	}
	g.last = now
	return true, nil
}

func (g *MemoryGate) Release(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.last = time.Time{}
	return nil
}

// RedisGate shares the limiter across replicas with SET NX PX.
type RedisGate struct {
	client   *redis.Client
	key      string
	interval time.Duration
}

func NewRedisGate(client *redis.Client, key string, interval time.Duration) *RedisGate {
	return &RedisGate{client: client, key: key, interval: interval}
}

func (g *RedisGate) Allow(ctx context.Context, now time.Time) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key, now.UTC().Format(time.RFC3339Nano), g.interval).Result()
	if err != nil {
		return false, fmt.Errorf("acquire sweep gate %s: %w", g.key, err)
	}
	return ok, nil
}

func (g *RedisGate) Release(ctx context.Context) error {
	if err := g.client.Del(ctx, g.key).Err(); err != nil {
		return fmt.Errorf("release sweep gate %s: %w", g.key, err)
	}
	return nil
}

// GateKey builds the redis key for a named job.
func GateKey(prefix, job string) string {
	if prefix == "" {
		return "sweep:" + job
	}
	return prefix + ":sweep:" + job
}

// NewGate picks the gate backend from configuration. A nil client always yields a MemoryGate.
func NewGate(cfg *config.Config, client *redis.Client, job string, interval time.Duration) Gate {
	if cfg.Scheduler.GateBackend == config.GateBackendRedis && client != nil {
		return NewRedisGate(client, GateKey(cfg.Redis.KeyPrefix, job), interval)
	}
	return NewMemoryGate(interval)
}
