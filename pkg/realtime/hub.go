package realtime

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
	"github.com/google/uuid"
)

// Collection names observable through the change feed
const (
	CollectionLeads = "leads"
	CollectionTasks = "tasks"
	CollectionLists = "lists"
)

// redis channel carrying cross-instance change notifications
const changeChannel = "lumina:changes"

// Hub fans out level-triggered change notifications per collection.
// Notifications carry no payload; subscribers are expected to re-fetch
// the collection. When a cache client is provided, notifications also
// propagate to other instances over Redis pub/sub, but local delivery
// never depends on Redis being reachable.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[int64]func()
	nextID int64

	cache    *cache.Client
	instance string
	cancel   context.CancelFunc
	done     chan struct{}
}

// Subscription is a handle to an active change-feed subscription.
// Unsubscribe must be called exactly once when the consumer goes away.
type Subscription struct {
	hub        *Hub
	collection string
	id         int64
	once       sync.Once
}

// NewHub creates a new change-feed hub. cacheClient may be nil for a
// purely in-process hub.
func NewHub(cacheClient *cache.Client) *Hub {
	h := &Hub{
		subs:     make(map[string]map[int64]func()),
		cache:    cacheClient,
		instance: uuid.NewString(),
		done:     make(chan struct{}),
	}

	if cacheClient != nil {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancel = cancel
		go h.relay(ctx)
	} else {
		close(h.done)
	}

	return h
}

// Subscribe registers fn to run on every change to the collection.
func (h *Hub) Subscribe(collection string, fn func()) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int64]func())
	}
	h.subs[collection][id] = fn

	return &Subscription{hub: h, collection: collection, id: id}
}

// Unsubscribe tears down the subscription. Safe to call once; further
// calls are no-ops. After it returns no callbacks fire for this handle.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		delete(s.hub.subs[s.collection], s.id)
	})
}

// Notify signals that the collection changed. Delivery is at-least-once
// per remote mutation; callbacks receive no payload.
func (h *Hub) Notify(ctx context.Context, collection string) {
	h.deliver(collection)

	if h.cache != nil {
		if err := h.cache.Publish(ctx, changeChannel, h.instance+"|"+collection); err != nil {
			log.Printf("⚠️  Failed to publish change notification: %v", err)
		}
	}
}

func (h *Hub) deliver(collection string) {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs[collection]))
	for _, fn := range h.subs[collection] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// relay forwards notifications published by other instances into the
// local subscriber set. Messages from this instance were already
// delivered locally and are skipped.
func (h *Hub) relay(ctx context.Context) {
	defer close(h.done)

	pubsub := h.cache.Subscribe(ctx, changeChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			instance, collection, found := strings.Cut(msg.Payload, "|")
			if !found || instance == h.instance {
				continue
			}
			h.deliver(collection)
		}
	}
}

// Close stops the cross-instance relay and drops all subscribers.
func (h *Hub) Close() {
	if h.cancel != nil {
		h.cancel()
	}
	<-h.done

	h.mu.Lock()
	h.subs = make(map[string]map[int64]func())
	h.mu.Unlock()
}
