package idgen

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceUniqueUnderConcurrency(t *testing.T) {
	seq := NewSequence()
	const workers, each = 8, 250

	var mu sync.Mutex
	seen := make(map[string]bool, workers*each)
	var wg sync.WaitGroup
	for _i := 0; _i < workers; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _i := 0; _i < each; _i++ {
				id, err := seq.Next(context.Background())
				assert.NoError(t, err)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*each)
}

func TestSequenceObserve(t *testing.T) {
	seq := NewSequence()
	seq.Observe("41")
	seq.Observe("7")
	seq.Observe("f6a9")

	id, err := seq.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestUUID(t *testing.T) {
	id, err := UUID{}.Next(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewStrategies(t *testing.T) {
	g, err := New("", nil, "dishes")
	require.NoError(t, err)
	assert.IsType(t, &Sequence{}, g)

	g, err = New(StrategyUUID, nil, "dishes")
	require.NoError(t, err)
	assert.IsType(t, UUID{}, g)

	_, err = New(StrategyRedis, nil, "dishes")
	assert.Error(t, err)

	_, err = New("snowflake", nil, "dishes")
	assert.Error(t, err)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	gen := NewRedis(client, "test-"+uuid.NewString())
	defer client.Del(ctx, gen.key)

	gen.Observe("10")
	id, err := gen.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "11", id)
}
