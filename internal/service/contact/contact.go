package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
	"github.com/Alijeyrad/portfolio_backend/pkg/constants"
	"github.com/Alijeyrad/portfolio_backend/pkg/reqctx"
)

// SubjectReceived is the event subject published after a message is stored.
const SubjectReceived = "portfolio.contact.received"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ReceivedEvent announces a stored contact message.
type ReceivedEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Content     string    `json:"content"`
	RequestID   string    `json:"request_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ---------------------------------------------------------------------------
// Dependencies
// ---------------------------------------------------------------------------

// Store is the subset of the document store the service needs.
type Store interface {
	CreateDocument(ctx context.Context, collection string, payload any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter any, limit int64) ([]bson.M, error)
}

// Notifier is told about every stored message.
type Notifier interface {
	ContactReceived(ctx context.Context, evt ReceivedEvent) error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit stores a validated message and returns its id.
	Submit(ctx context.Context, msg schema.Message) (string, error)
	// Get reads one stored message back.
	Get(ctx context.Context, id string) (schema.StoredMessage, error)
	// List returns up to limit stored messages in store order. limit <= 0 means all.
	List(ctx context.Context, limit int64) ([]schema.StoredMessage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

// New builds the service. store may be nil when no database is configured;
// notifier may be nil to skip notifications.
func New(store Store, notifier Notifier) Service {
	return &contactService{store: store, notifier: notifier, now: time.Now}
}

func (s *contactService) Submit(ctx context.Context, msg schema.Message) (string, error) {
	if s.store == nil {
		return "", ErrNotConfigured
	}

	msg.RequestID = reqctx.RequestIDFromContext(ctx)

	id, err := s.store.CreateDocument(ctx, constants.MessageCollection, msg)
	if err != nil {
		slog.ErrorContext(ctx, "contact: store message failed", append(reqctx.LogAttrs(ctx), "err", err)...)
		return "", err
	}

	slog.InfoContext(ctx, "contact: message stored", append(reqctx.LogAttrs(ctx), "id", id)...)

	if s.notifier != nil {
		evt := ReceivedEvent{
			ID:          id,
			Name:        msg.Name,
			Email:       msg.Email,
			Subject:     msg.Subject,
			Content:     msg.Content,
			RequestID:   msg.RequestID,
			SubmittedAt: s.now().UTC(),
		}
		// The message is already stored; a failed notification must not fail the request.
		if err := s.notifier.ContactReceived(ctx, evt); err != nil {
			slog.WarnContext(ctx, "contact: notification failed", "id", id, "err", err)
		}
	}

	return id, nil
}

func (s *contactService) Get(ctx context.Context, id string) (schema.StoredMessage, error) {
	if s.store == nil {
		return schema.StoredMessage{}, ErrNotConfigured
	}

	filter, err := filterByID(id)
	if err != nil {
		return schema.StoredMessage{}, err
	}

	docs, err := s.store.GetDocuments(ctx, constants.MessageCollection, filter, 1)
	if err != nil {
		return schema.StoredMessage{}, err
	}
	if len(docs) == 0 {
		return schema.StoredMessage{}, ErrNotFound
	}
	return decodeMessage(docs[0])
}

func (s *contactService) List(ctx context.Context, limit int64) ([]schema.StoredMessage, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}

	docs, err := s.store.GetDocuments(ctx, constants.MessageCollection, nil, limit)
	if err != nil {
		return nil, err
	}

	out := make([]schema.StoredMessage, 0, len(docs))
	for _, doc := range docs {
		m, err := decodeMessage(doc)
		if err != nil {
			return nil, fmt.Errorf("decode message %v: %w", doc["_id"], err)
		}
		out = append(out, m)
	}
	return out, nil
}

func decodeMessage(doc bson.M) (schema.StoredMessage, error) {
	var m schema.StoredMessage
	raw, err := bson.Marshal(doc)
	if err != nil {
		return m, err
	}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return m, err
	}
	return m, nil
}

func filterByID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return bson.M{"_id": oid}, nil
}
