package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

type ChatService interface {
	// History returns the last 50 messages, oldest first.
	History(ctx context.Context) ([]domain.ChatMessage, error)
	// Append persists a message attributed to the given identity. Blank
	// text (after trimming) yields domain.ErrEmptyMessage.
	Append(ctx context.Context, claims *domain.Claims, text string) (*domain.ChatMessage, error)
}
