package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

// MessageRepository defines the interface for the append-only chat log.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	// FindLast returns the most recent limit messages in chronological
	// order (oldest first).
	FindLast(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
