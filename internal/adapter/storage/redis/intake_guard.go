package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// IntakeGuard implements ports.IntakeGuard using Redis SET NX.
// It remembers correlation ids for ttl so a resubmitted payment is dropped
// before it reaches the queue. The table's primary key remains the authority.
type IntakeGuard struct {
	client *goredis.Client
	prefix string
}

// NewIntakeGuard creates a new Redis-backed intake guard.
func NewIntakeGuard(client *goredis.Client) *IntakeGuard {
	return &IntakeGuard{
		client: client,
		prefix: "intake:",
	}
}

// FirstSeen marks id as seen. It returns true the first time an id is
// presented within ttl, false for every repeat.
func (g *IntakeGuard) FirstSeen(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+id.String(), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis intake guard: %w", err)
	}
	return result == "OK", nil
}

// Forget releases id so it can be submitted again, e.g. after the queue rejected it.
func (g *IntakeGuard) Forget(ctx context.Context, id uuid.UUID) error {
	if err := g.client.Del(ctx, g.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis intake forget: %w", err)
	}
	return nil
}
