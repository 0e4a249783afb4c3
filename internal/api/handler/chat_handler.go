package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

// ChatHandler serves the chat history replayed by clients at connect time.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// History handles GET /api/chat. Requires a valid bearer token.
//
// @Summary      Last 50 chat messages, oldest first
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ChatMessage
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/chat [get]
func (h *ChatHandler) History(c echo.Context) error {
	messages, err := h.service.History(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
