package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

const (
	eventChatMessage = "chat:message"
	eventError       = "error"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 50 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

// envelope is the wire format for both directions:
// inbound  {"event":"chat:message","data":{"text":"..."}}
// outbound {"event":"chat:message","data":{...}} or {"event":"error","data":{"message":"..."}}
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type chatInput struct {
	Text string `json:"text"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// chatBroadcast is the outbound view of a persisted message. The sender's
// user id stays server-side.
type chatBroadcast struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is one authenticated websocket connection. It holds the identity
// verified at handshake time; every message it sends is attributed to those
// claims for the lifetime of the connection.
type Session struct {
	hub  *Hub
	conn *websocket.Conn
	// send carries outbound payloads. Only buffered, never closed; the hub
	// signals teardown by closing done so no goroutine can race a close.
	send   chan []byte
	done   chan struct{}
	claims *domain.Claims
	chat   ports.ChatService
	log    zerolog.Logger
}

func newSession(hub *Hub, conn *websocket.Conn, claims *domain.Claims, chat ports.ChatService, log zerolog.Logger) *Session {
	return &Session{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		claims: claims,
		chat:   chat,
		log:    log,
	}
}

// readPump consumes inbound frames until the connection drops. A message
// already handed to the chat service is not rolled back when the client
// disconnects mid-flight.
func (s *Session) readPump(ctx context.Context) {
	defer func() {
		s.hub.unregister <- s
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		s.handleFrame(ctx, raw)
	}
}

// writePump drains the send channel onto the connection and keeps the
// connection alive with pings. Runs on the upgrade goroutine.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleFrame dispatches one inbound frame. Handler panics are contained per
// frame and surface to the client as a protocol-level error event instead of
// tearing down the process.
func (s *Session) handleFrame(ctx context.Context, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("username", s.claims.Username).Msg("chat handler panicked")
			s.sendError("internal error")
		}
	}()

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Unparseable frames are dropped silently, like blank messages.
		return
	}

	switch env.Event {
	case eventChatMessage:
		s.handleChatMessage(ctx, env.Data)
	default:
		// Unknown events are ignored.
	}
}

func (s *Session) handleChatMessage(ctx context.Context, data json.RawMessage) {
	var input chatInput
	if err := json.Unmarshal(data, &input); err != nil {
		// Non-string or malformed text: silently ignored.
		return
	}

	msg, err := s.chat.Append(ctx, s.claims, input.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			return
		}
		s.sendError("failed to send message")
		return
	}

	payload, err := json.Marshal(envelopeFor(eventChatMessage, chatBroadcast{
		ID:        msg.ID,
		Username:  msg.Username,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal chat broadcast")
		return
	}

	metrics.ChatMessagesTotal.Inc()
	s.hub.Broadcast(payload)
}

// sendError emits an error event to this session only. Best-effort: dropped
// when the send buffer is full.
func (s *Session) sendError(message string) {
	payload, err := json.Marshal(envelopeFor(eventError, errorPayload{Message: message}))
	if err != nil {
		return
	}
	select {
	case <-s.done:
	case s.send <- payload:
	default:
	}
}

func envelopeFor(event string, data any) map[string]any {
	return map[string]any{"event": event, "data": data}
}
