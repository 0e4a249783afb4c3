package realtime

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
)

// Hub tracks active chat sessions and fans each broadcast out to all of them,
// sender included. Delivery is best-effort: a session whose send buffer is
// full is dropped rather than allowed to stall the loop.
type Hub struct {
	register   chan *Session
	unregister chan *Session
	broadcast  chan []byte
	sessions   map[*Session]bool
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Session),
		unregister: make(chan *Session),
		broadcast:  make(chan []byte, 64),
		sessions:   make(map[*Session]bool),
		log:        log,
	}
}

// Run owns the session set; all mutation happens on this goroutine. Returns
// when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for s := range h.sessions {
				h.drop(s)
			}
			return
		case s := <-h.register:
			h.sessions[s] = true
			metrics.ChatConnectionsActive.Inc()
			h.log.Info().Str("username", s.claims.Username).Msg("chat session connected")
		case s := <-h.unregister:
			if h.sessions[s] {
				h.drop(s)
				h.log.Info().Str("username", s.claims.Username).Msg("chat session disconnected")
			}
		case payload := <-h.broadcast:
			for s := range h.sessions {
				select {
				case s.send <- payload:
				default:
					// Slow consumer: disconnect instead of blocking everyone.
					h.drop(s)
					h.log.Warn().Str("username", s.claims.Username).Msg("chat session dropped, send buffer full")
				}
			}
		}
	}
}

// Broadcast queues a payload for delivery to every connected session.
func (h *Hub) Broadcast(payload []byte) {
	h.broadcast <- payload
}

// drop removes a session and signals its pumps to stop. The send channel is
// never closed: the session's read goroutine may still be writing to it, so
// teardown is signalled through done instead.
func (h *Hub) drop(s *Session) {
	delete(h.sessions, s)
	close(s.done)
	metrics.ChatConnectionsActive.Dec()
}
