package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
)

func TestNotifyDeliversToSubscribers(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	calls := 0
	sub := hub.Subscribe(CollectionLeads, func() { calls++ })
	defer sub.Unsubscribe()

	hub.Notify(context.Background(), CollectionLeads)
	hub.Notify(context.Background(), CollectionLeads)

	assert.Equal(t, 2, calls)
}

func TestNotifyScopedToCollection(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	leadCalls := 0
	taskCalls := 0
	hub.Subscribe(CollectionLeads, func() { leadCalls++ })
	hub.Subscribe(CollectionTasks, func() { taskCalls++ })

	hub.Notify(context.Background(), CollectionLeads)

	assert.Equal(t, 1, leadCalls)
	assert.Equal(t, 0, taskCalls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	calls := 0
	sub := hub.Subscribe(CollectionLeads, func() { calls++ })

	hub.Notify(context.Background(), CollectionLeads)
	sub.Unsubscribe()
	hub.Notify(context.Background(), CollectionLeads)
	hub.Notify(context.Background(), CollectionLeads)

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	sub := hub.Subscribe(CollectionLeads, func() {})
	sub.Unsubscribe()

	assert.NotPanics(t, func() { sub.Unsubscribe() })
}

func TestCrossInstanceRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	hubA := NewHub(client)
	defer hubA.Close()
	hubB := NewHub(client)
	defer hubB.Close()

	received := make(chan struct{}, 1)
	hubB.Subscribe(CollectionLeads, func() {
		select {
		case received <- struct{}{}:
		default:
		}
	})

	// Give hubB's relay a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	hubA.Notify(context.Background(), CollectionLeads)

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("expected cross-instance notification")
	}
}
