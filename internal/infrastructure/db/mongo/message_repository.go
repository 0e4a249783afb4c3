package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

const messagesCollection = "messages"

// MessageRepository implements ports.MessageRepository using MongoDB. The
// chat log is append-only; no update or delete path exists.
type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type mongoMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoMessage) toDomain() domain.ChatMessage {
	return domain.ChatMessage{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Username:  m.Username,
		Text:      m.Text,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (r *MessageRepository) Insert(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	saved := *msg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		saved.ID = oid.Hex()
	}
	return &saved, nil
}

// FindLast returns the most recent limit messages in chronological order
// (oldest first). The query sorts newest-first for the limit, then the slice
// is reversed in memory.
func (r *MessageRepository) FindLast(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoMessage
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, len(docs))
	for i, d := range docs {
		messages[len(docs)-1-i] = d.toDomain()
	}
	return messages, nil
}

// EnsureIndexes creates the sort index used by FindLast.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
