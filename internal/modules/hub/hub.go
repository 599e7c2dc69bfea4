// Package hub fans newly published images out to connected realtime
// clients over websockets. Delivery is best effort and at most once:
// there is no replay buffer, so a client that connects after an event was
// published never sees it.
package hub

import (
	"context"
	"sync"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	jsoniter "github.com/json-iterator/go"
)

// Event mirrors the fields of a freshly published image. It exists only
// on the wire.
type Event struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
}

const EventNewImage = "new-image"

type Hub struct {
	subscribers map[*Subscriber]bool

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan []byte

	mu    sync.RWMutex
	count int
}

func New() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan []byte, 16),
	}
}

// Run owns the subscriber set. All joins, leaves and fan-outs go through
// this loop, so subscribers can come and go while a publish is in flight
// without racing it.
func (h *Hub) Run(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case s := <-h.register:
				h.subscribers[s] = true
				h.setCount(len(h.subscribers))
				logs.Logger.Info().Int("subscribers", len(h.subscribers)).Msg("realtime client connected")
			case s := <-h.unregister:
				if _, ok := h.subscribers[s]; ok {
					delete(h.subscribers, s)
					close(s.send)
					h.setCount(len(h.subscribers))
					logs.Logger.Info().Int("subscribers", len(h.subscribers)).Msg("realtime client disconnected")
				}
			case message := <-h.broadcast:
				for s := range h.subscribers {
					select {
					case s.send <- message:
					default:
						// Slow consumer: drop it instead of
						// blocking everyone else.
						delete(h.subscribers, s)
						close(s.send)
					}
				}
				h.setCount(len(h.subscribers))
			case <-ctx.Done():
				for s := range h.subscribers {
					delete(h.subscribers, s)
					close(s.send)
				}
				h.setCount(0)
				return
			}
		}
	}()
}

// Publish serializes the event and hands it to the fan-out loop. It never
// blocks the caller and never returns an error: a publish that cannot be
// delivered is logged and dropped.
func (h *Hub) Publish(event Event) {
	data, err := jsoniter.Marshal(event)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("broadcast event marshal failed")
		return
	}
	select {
	case h.broadcast <- data:
	default:
		logs.Logger.Warn().Str("type", event.Type).Msg("broadcast queue full, event dropped")
	}
}

// SubscriberCount reports how many clients are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}
