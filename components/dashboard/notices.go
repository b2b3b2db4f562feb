package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// NoticeKind is the tone of a UI notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is a short-lived toast shown after an admin action.
type Notice struct {
	ID        string     `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewNotice stamps a notice with a fresh id.
func NewNotice(kind NoticeKind, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// NoticeHook receives notices published by the service.
type NoticeHook interface {
	Publish(ctx context.Context, notice Notice) error
}

type noopNoticeHook struct{}

func (noopNoticeHook) Publish(context.Context, Notice) error { return nil }

// BroadcastHook fans out notices to in-process subscribers. Slow subscribers
// miss notices rather than block publishers.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan Notice
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{subs: make(map[int]chan Notice)}
}

// Publish satisfies NoticeHook.
func (h *BroadcastHook) Publish(_ context.Context, notice Notice) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- notice:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of notices and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan Notice, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Notice, 8)
	h.subs[id] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Stream delivers notices to send until ctx ends or send fails.
func (h *BroadcastHook) Stream(ctx context.Context, send func(Notice) error) error {
	notices, cancel := h.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case notice, ok := <-notices:
			if !ok {
				return nil
			}
			if err := send(notice); err != nil {
				return err
			}
		}
	}
}

// upgrader keeps gorilla's same-origin check: browsers on other hosts are refused.
var upgrader = websocket.Upgrader{}

// ServeWebSocket upgrades the request and streams notices as JSON.
func (h *BroadcastHook) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	// Reads only detect the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()
	_ = h.Stream(ctx, func(n Notice) error {
		return conn.WriteJSON(n)
	})
}

// ServeSSE streams notices as Server-Sent Events.
func (h *BroadcastHook) ServeSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}
	_ = h.Stream(r.Context(), func(n Notice) error {
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte("event: notice\ndata: " + string(data) + "\n\n")); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
}
