package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is the structured notifier event published at each pipeline
// lifecycle moment.
type Event struct {
	EventID       string
	CorrelationID string
	Timestamp     time.Time
	OrderID       string
	Email         string
	StepName      string
	EventType     EventType
}

// Topic renders this event's concrete topic string.
func (e Event) Topic() string {
	return Topic(e.StepName, e.EventType, e.OrderID, e.Email)
}

// NewEvent stamps a fresh event_id and timestamp.
func NewEvent(correlationID, orderID, email, stepName string, eventType EventType) Event {
	return Event{
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Timestamp:     time.Now(),
		OrderID:       orderID,
		Email:         email,
		StepName:      stepName,
		EventType:     eventType,
	}
}

// Handler receives one delivered event.
type Handler func(ctx context.Context, event Event)

// Bus is the pub-sub contract: Publish is fire-and-forget, delivery is
// best-effort at-most-once per subscriber, slow subscribers MUST NOT block
// the publisher (handlers run on their own goroutine).
type Bus interface {
	Publish(ctx context.Context, event Event)
	Subscribe(pattern string, handler Handler) (unsubscribe func())
}

type subscription struct {
	id      uint64
	pattern string
	handler Handler
}

// memoryBus is an in-process implementation behind a reader-biased lock;
// publishes take a read guard so concurrent publishes never block each
// other, only Subscribe/unsubscribe take the write lock.
type memoryBus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

// New creates an in-memory Bus.
func New() Bus {
	return &memoryBus{}
}

func (b *memoryBus) Publish(ctx context.Context, event Event) {
	topic := event.Topic()

	b.mu.RLock()
	matched := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if MatchesPattern(s.pattern, topic) {
			matched = append(matched, s.handler)
		}
	}
	b.mu.RUnlock()

	for _, h := range matched {
		go h(ctx, event)
	}
}

func (b *memoryBus) Subscribe(pattern string, handler Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription{id: id, pattern: pattern, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}
