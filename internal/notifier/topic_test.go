package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeAllStepsPattern(t *testing.T) {
	assert.Equal(t, "step:*:step_type:*:booking:*:email:*", SubscribeAllStepsPattern())
}

func TestSubscribeByEmailPattern(t *testing.T) {
	assert.Equal(t, "step:*:step_type:*:booking:*:email:user@example.com", SubscribeByEmailPattern("user@example.com"))
}

func TestSubscribeByOrderIDPattern(t *testing.T) {
	assert.Equal(t, "step:*:step_type:*:booking:ORDER123:email:*", SubscribeByOrderIDPattern("ORDER123"))
}

func TestSubscribeByEmailAndOrderIDPattern(t *testing.T) {
	assert.Equal(t, "step:*:step_type:*:booking:ORDER123:email:user@example.com",
		SubscribeByEmailAndOrderIDPattern("user@example.com", "ORDER123"))
}

func TestSubscribeByStepNamePattern(t *testing.T) {
	assert.Equal(t, "step:payment:step_type:*:booking:*:email:*", SubscribeByStepNamePattern("payment"))
}

func TestTopicFormat(t *testing.T) {
	e := Event{OrderID: "ORDER123", Email: "user@example.com", StepName: "payment", EventType: OnStepStart}
	assert.Equal(t, "step:payment:step_type:on_step_start:booking:ORDER123:email:user@example.com", e.Topic())
}

func TestMakeTopicPattern(t *testing.T) {
	got := MakeTopicPattern("user@example.com", "ORDER123", "payment")
	assert.Equal(t, "step:payment:step_type:*:booking:ORDER123:email:user@example.com", got)
}

func TestMatchesPattern_WithExtraTopicSegment(t *testing.T) {
	topic := "step:payment:step_type:on_step_start:booking:ORDER123:email:user@example.com:payment_id:PAY123"
	pattern := "step:payment:step_type:*:booking:*:email:*:payment_id:PAY123"
	assert.True(t, MatchesPattern(pattern, topic))
}

// Testable property: matches_pattern(make_topic_pattern(email=e))
// == (topic.email == e), for any well-formed topic.
func TestMatchesPattern_EmailPatternEquivalence(t *testing.T) {
	cases := []struct {
		email      string
		topicEmail string
		want       bool
	}{
		{"a@x.com", "a@x.com", true},
		{"a@x.com", "b@x.com", false},
	}
	for _, c := range cases {
		topic := Topic("s1", OnStepStart, "ORD1", c.topicEmail)
		pattern := MakeTopicPattern(c.email, "", "")
		assert.Equal(t, c.want, MatchesPattern(pattern, topic))
	}
}

func TestBus_PublishDeliversToMatchingSubscribersOnly(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	var gotA, gotB []Event

	bus.Subscribe(SubscribeByStepNamePattern("payment"), func(ctx context.Context, e Event) {
		mu.Lock()
		gotA = append(gotA, e)
		mu.Unlock()
	})
	bus.Subscribe(SubscribeByStepNamePattern("email"), func(ctx context.Context, e Event) {
		mu.Lock()
		gotB = append(gotB, e)
		mu.Unlock()
	})

	bus.Publish(context.Background(), NewEvent("corr1", "ORD1", "u@x.com", "payment", OnStepStart))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(gotA)
		mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, gotA, 1)
	assert.Len(t, gotB, 0)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	count := 0
	unsub := bus.Subscribe(SubscribeAllStepsPattern(), func(ctx context.Context, e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	unsub()
	bus.Publish(context.Background(), NewEvent("corr1", "ORD1", "u@x.com", "payment", OnStepStart))
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, count)
}
