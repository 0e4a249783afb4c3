package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
	apimiddleware "github.com/vallespasiegos/catalog-system/internal/api/middleware"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS authenticates and upgrades a chat connection. The token comes from
// the Authorization header or, for browser clients that cannot set headers on
// a websocket dial, a token query parameter. A failed handshake never
// upgrades: the client gets a 401 and no events.
func ServeWS(hub *Hub, verifier ports.TokenVerifier, chat ports.ChatService, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			var err error
			token, err = apimiddleware.BearerToken(c.Request())
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return err
			}
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return nil
		}

		session := newSession(hub, conn, claims, chat, log)
		hub.register <- session

		// Persistence uses a detached context: a message already accepted is
		// not rolled back when the client disconnects mid-flight.
		go session.readPump(context.Background())
		session.writePump()
		return nil
	}
}
