package services

import (
	"log"
	"sync"

	"leaderboard-system/models"

	"github.com/google/uuid"
)

// Event names pushed over the realtime channel.
const (
	EventUsersUpdated  = "usersUpdated"
	EventPointsClaimed = "pointsClaimed"
)

const subscriberBuffer = 16

// Event is one server-push notification fanned out to every connected client.
type Event struct {
	Name string
	Data any
}

// PointsClaimedPayload mirrors the claim response so REST callers and push
// clients see the same shape.
type PointsClaimedPayload struct {
	User          models.User   `json:"user"`
	PointsAwarded int           `json:"pointsAwarded"`
	Users         []models.User `json:"users"`
}

// Broadcaster fans events out to every subscribed client session. Delivery is
// best-effort: a subscriber whose buffer is full has the event dropped rather
// than blocking the publisher. Per subscriber, delivered events stay in
// publish order.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
	closed      bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subscribers: make(map[string]chan Event)}
}

// Subscribe registers a new client session and returns its id plus the channel
// events arrive on. After Close the returned channel is already closed.
func (b *Broadcaster) Subscribe() (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return id, ch
	}
	b.subscribers[id] = ch
	log.Printf("Client connected: %s (%d active)", id, len(b.subscribers))
	return id, ch
}

// Unsubscribe removes a client session and closes its channel. Safe to call
// for ids that are already gone.
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return
	}
	delete(b.subscribers, id)
	close(ch)
	log.Printf("Client disconnected: %s (%d active)", id, len(b.subscribers))
}

// Publish delivers the event to every current subscriber without blocking.
func (b *Broadcaster) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("⚠️  Dropping %s event for slow client %s", event.Name, id)
		}
	}
}

// SubscriberCount reports how many client sessions are currently connected.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts the hub down: all subscriber channels are closed and later
// publishes become no-ops.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
