package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// Event kinds and actions carried over the live update stream.
const (
	KindOrder   = "order"
	KindMessage = "message"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is a single live update. Order is set for order events and
// Message for chat events.
type Event struct {
	Kind    string         `json:"kind"`
	Action  string         `json:"action"`
	Order   *model.Order   `json:"order,omitempty"`
	Message *model.Message `json:"message,omitempty"`
}

// Subscriber receives events addressed to a single principal. Admin
// subscribers see everything; customer subscribers only see events that
// concern their own phone number.
type Subscriber struct {
	Phone string
	Admin bool
	C     chan Event
}

// Hub fans events out to connected subscribers in the background.
type Hub struct {
	buffer int
	logger *slog.Logger

	events chan Event
	subs   map[*Subscriber]struct{}
	subMu  sync.Mutex

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewHub constructs a hub. buffer bounds both the inbound event queue
// and each subscriber channel.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		buffer: buffer,
		logger: logger,
		events: make(chan Event, buffer),
		subs:   make(map[*Subscriber]struct{}),
	}
}

// Start launches the background fan-out loop.
func (h *Hub) Start(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	h.wg.Add(1)
	go h.loop(runCtx)
}

// Stop terminates the fan-out loop and waits for it to finish.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.mu.Unlock()

	h.wg.Wait()
}

// Publish enqueues an event without blocking. When the queue is full the
// event is dropped; live updates are best effort.
func (h *Hub) Publish(event Event) {
	select {
	case h.events <- event:
	default:
		h.logger.Warn("event queue full, dropping event", slog.String("kind", event.Kind), slog.String("action", event.Action))
	}
}

// Subscribe registers a subscriber for the given principal and returns it.
func (h *Hub) Subscribe(phone string, admin bool) *Subscriber {
	sub := &Subscriber{Phone: phone, Admin: admin, C: make(chan Event, h.buffer)}
	h.subMu.Lock()
	h.subs[sub] = struct{}{}
	h.subMu.Unlock()
	return sub
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.subMu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.subMu.Unlock()
}

func (h *Hub) loop(ctx context.Context) {
	defer h.wg.Done()
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event Event) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for sub := range h.subs {
		if !visibleTo(sub, event) {
			continue
		}
		select {
		case sub.C <- event:
		default:
			// Slow consumer; skip rather than stall the loop.
		}
	}
}

func (h *Hub) closeAll() {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.C)
	}
}

func visibleTo(sub *Subscriber, event Event) bool {
	if sub.Admin {
		return true
	}
	switch event.Kind {
	case KindOrder:
		return event.Order != nil && event.Order.CustomerPhone == sub.Phone
	case KindMessage:
		if event.Message == nil {
			return false
		}
		return event.Message.SenderID == sub.Phone || event.Message.RecipientID == sub.Phone
	}
	return false
}
