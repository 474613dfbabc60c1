package app

import (
	"context"

	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
)

type publisher interface {
	Publish(ctx context.Context, subject string, v any) error
}

// eventNotifier hands contact messages to the worker over NATS.
type eventNotifier struct {
	pub publisher
}

func (n *eventNotifier) ContactReceived(ctx context.Context, evt contact.ReceivedEvent) error {
	return n.pub.Publish(ctx, contact.SubjectReceived, evt)
}

// emailNotifier mails the owner in the request path.
type emailNotifier struct {
	sender email.Sender
	to     string
}

func (n *emailNotifier) ContactReceived(ctx context.Context, evt contact.ReceivedEvent) error {
	return n.sender.Send(ctx, contactEmail(n.to, evt))
}

func contactEmail(to string, evt contact.ReceivedEvent) email.Message {
	return email.BuildContactNotificationEmail(to, email.ContactEmailData{
		MessageID:   evt.ID,
		Name:        evt.Name,
		Email:       evt.Email,
		Subject:     evt.Subject,
		Content:     evt.Content,
		SubmittedAt: evt.SubmittedAt,
	})
}
