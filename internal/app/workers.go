package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
	"github.com/Alijeyrad/portfolio_backend/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn    `optional:"true"`
	Email *email.Client `optional:"true"`
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		return
	}
	if p.Email == nil || !p.Email.Enabled() || p.Email.NotifyTo() == "" {
		slog.Info("contact_worker: email disabled, contact events will not be mailed")
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = events.Subscribe(p.NC, contact.SubjectReceived, contactMailer(p.Email, p.Email.NotifyTo()))
			if err != nil {
				slog.Error("contact_worker: subscribe failed", "subject", contact.SubjectReceived, "err", err)
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			if sub != nil {
				return sub.Unsubscribe()
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// contact_worker
// ---------------------------------------------------------------------------

// contactMailer forwards each received contact message to the owner.
// Delivery failures are logged; the event is not redelivered.
func contactMailer(sender email.Sender, to string) func(context.Context, contact.ReceivedEvent) {
	return func(ctx context.Context, evt contact.ReceivedEvent) {
		if err := sender.Send(ctx, contactEmail(to, evt)); err != nil {
			slog.Warn("contact_worker: send email failed", "id", evt.ID, "request_id", evt.RequestID, "err", err)
			return
		}
		slog.Debug("contact_worker: owner notified", "id", evt.ID)
	}
}
