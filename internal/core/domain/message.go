package domain

import (
	"errors"
	"time"
)

var ErrEmptyMessage = errors.New("empty message")

// ChatMessage is a single entry in the append-only chat log. Messages are
// never updated or deleted.
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
