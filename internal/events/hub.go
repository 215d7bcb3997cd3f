package events

import (
	"sync"
)

// Topics published by the scoring core.
const (
	TopicEvaluationUpdated = "evaluation.updated"
	TopicScoreUpdated      = "score.updated"
)

// Event is a change notification for one (project, user) pair. It only
// signals that listeners should re-fetch; it carries no record data.
type Event struct {
	Topic     string
	ProjectID string
	UserID    string
}

// Hub is an in-process publish/subscribe hub. Services publish change
// notifications and interested callers subscribe explicitly; there is
// no ambient global signal.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe registers a listener for a topic. The returned function
// removes the subscription and closes the channel.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.subscribers[topic] = append(h.subscribers[topic], ch)
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		subs := h.subscribers[topic]
		for i, sub := range subs {
			if sub == ch {
				h.subscribers[topic] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}

	return ch, unsubscribe
}

// Publish delivers the event to all current subscribers of its topic.
// Delivery never blocks: a subscriber with a full buffer misses the
// event, which is acceptable for refresh-trigger semantics.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[event.Topic] {
		select {
		case ch <- event:
		default:
		}
	}
}
