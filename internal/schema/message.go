package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name" bson:"name" validate:"required,max=100"`
	Email   string `json:"email" bson:"email" validate:"required,email,max=254"`
	Subject string `json:"subject,omitempty" bson:"subject,omitempty" validate:"max=200"`
	Content string `json:"content" bson:"content" validate:"required,max=5000"`

	// RequestID ties the stored record to the access log. Never read from the client.
	RequestID string `json:"-" bson:"request_id,omitempty"`
}

// Normalize trims surrounding whitespace so blank fields fail "required".
func (m *Message) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Content = strings.TrimSpace(m.Content)
}

// Validate normalizes and validates the message.
func (m *Message) Validate() error {
	m.Normalize()
	return Validate(m)
}

// StoredMessage is a Message as read back from the store.
type StoredMessage struct {
	ID        primitive.ObjectID `json:"id" yaml:"id" bson:"_id"`
	Name      string             `json:"name" yaml:"name" bson:"name"`
	Email     string             `json:"email" yaml:"email" bson:"email"`
	Subject   string             `json:"subject,omitempty" yaml:"subject,omitempty" bson:"subject,omitempty"`
	Content   string             `json:"content" yaml:"content" bson:"content"`
	RequestID string             `json:"request_id,omitempty" yaml:"request_id,omitempty" bson:"request_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" yaml:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" yaml:"updated_at" bson:"updated_at"`
}
