// Package idgen assigns record ids.
package idgen

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Strategy names accepted by config.
const (
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
	StrategyRedis    = "redis"
)

// Generator hands out ids that are unique for the collection it serves.
type Generator interface {
	Next(ctx context.Context) (string, error)
}

// Observer is implemented by generators that must skip ids already in use,
// e.g. ids loaded from seed data.
type Observer interface {
	Observe(id string)
}

// Sequence is a process-local counter producing "1", "2", ...
type Sequence struct {
	n atomic.Uint64
}

// NewSequence returns a counter starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next number as a decimal string.
func (s *Sequence) Next(context.Context) (string, error) {
	return strconv.FormatUint(s.n.Add(1), 10), nil
}

// Observe advances the counter past id if id is numeric.
func (s *Sequence) Observe(id string) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return
	}
	for {
		cur := s.n.Load()
		if v <= cur || s.n.CompareAndSwap(cur, v) {
			return
		}
	}
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// Next returns a new UUID string.
func (UUID) Next(context.Context) (string, error) {
	return uuid.NewString(), nil
}

// Redis draws ids from an INCR counter so several API instances share one
// sequence.
type Redis struct {
	client redis.Cmdable
	key    string
}

// NewRedis returns a generator using key "grubdash:<collection>:seq".
func NewRedis(client redis.Cmdable, collection string) *Redis {
	return &Redis{client: client, key: "grubdash:" + collection + ":seq"}
}

// Next increments the shared counter.
func (r *Redis) Next(ctx context.Context) (string, error) {
	n, err := r.client.Incr(ctx, r.key).Result()
	if err != nil {
		return "", fmt.Errorf("incr %s: %w", r.key, err)
	}
	return strconv.FormatInt(n, 10), nil
}

// Observe raises the shared counter to id when it is numeric and larger.
func (r *Redis) Observe(id string) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	ctx := context.Background()
	cur, err := r.client.Get(ctx, r.key).Int64()
	if err != nil && err != redis.Nil {
		return
	}
	if v > cur {
		r.client.Set(ctx, r.key, v, 0)
	}
}

// New builds a generator for strategy. client is only used by the redis
// strategy.
func New(strategy string, client redis.Cmdable, collection string) (Generator, error) {
	switch strategy {
	case "", StrategySequence:
		return NewSequence(), nil
	case StrategyUUID:
		return UUID{}, nil
	case StrategyRedis:
		if client == nil {
			return nil, fmt.Errorf("redis id strategy needs a redis client")
		}
		return NewRedis(client, collection), nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}
