package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash/pkg/order"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	o := order.Order{ID: "1", Status: order.StatusPending}
	require.NoError(t, r.Publish(context.Background(), New(OrderCreated, o)))

	got := r.Events()
	require.Len(t, got, 1)
	assert.Equal(t, OrderCreated, got[0].Type)
	assert.Equal(t, "1", got[0].Order.ID)
	assert.WithinDuration(t, time.Now(), got[0].OccurredAt, time.Minute)
}

func TestEventJSON(t *testing.T) {
	e := New(OrderDeleted, order.Order{ID: "7", Status: order.StatusPending})
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"order.deleted"`)
	assert.Contains(t, string(b), `"occurred_at"`)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "order.updated", RoutingKey(OrderUpdated))
}

func TestAMQPPublisher(t *testing.T) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		t.Skip("AMQP_URL not set")
	}
	p, err := DialAMQP(url, "grubdash_test")
	require.NoError(t, err)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, p.Publish(ctx, New(OrderCreated, order.Order{ID: "1"})))
}
