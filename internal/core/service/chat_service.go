package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

// historyLimit caps the replayed chat backlog.
const historyLimit = 50

// ChatService persists chat messages and serves the replay backlog.
type ChatService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewChatService(repo ports.MessageRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{repo: repo, logger: logger}
}

// History returns the last 50 messages, oldest first.
func (s *ChatService) History(ctx context.Context) ([]domain.ChatMessage, error) {
	return s.repo.FindLast(ctx, historyLimit)
}

// Append stores a message attributed to the connected identity. Text blank
// after trimming yields ErrEmptyMessage; callers drop such input silently.
func (s *ChatService) Append(ctx context.Context, claims *domain.Claims, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := &domain.ChatMessage{
		UserID:    claims.ID,
		Username:  claims.Username,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.repo.Insert(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Str("username", claims.Username).Msg("failed to persist chat message")
		return nil, err
	}
	return saved, nil
}
