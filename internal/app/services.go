package app

import (
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
	"github.com/Alijeyrad/portfolio_backend/internal/service/project"
	"github.com/Alijeyrad/portfolio_backend/pkg/docstore"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
	"github.com/Alijeyrad/portfolio_backend/pkg/events"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideProjectService,
		ProvideContactNotifier,
		ProvideContactService,
		ProvideDiagnosticsService,
	),
)

func ProvideProjectService() (project.Service, error) {
	return project.New()
}

type NotifierParams struct {
	fx.In

	NC    *nats.Conn    `optional:"true"`
	Email *email.Client `optional:"true"`
}

// ProvideContactNotifier prefers publishing an event for the worker; without
// NATS it mails the owner inline. It returns nil when neither is available.
func ProvideContactNotifier(p NotifierParams) contact.Notifier {
	switch {
	case p.NC != nil:
		return &eventNotifier{pub: events.NewPublisher(p.NC)}
	case p.Email != nil && p.Email.Enabled() && p.Email.NotifyTo() != "":
		return &emailNotifier{sender: p.Email, to: p.Email.NotifyTo()}
	default:
		return nil
	}
}

func ProvideContactService(store *docstore.Store, notifier contact.Notifier) contact.Service {
	// a nil *Store must reach the service as a nil interface
	if store == nil {
		return contact.New(nil, notifier)
	}
	return contact.New(store, notifier)
}

func ProvideDiagnosticsService(store *docstore.Store, cfg *config.Config) diagnostics.Service {
	settings := diagnostics.Settings{
		DatabaseURLSet:  cfg.Database.URL != "",
		DatabaseNameSet: cfg.Database.Name != "",
	}
	timeout := time.Duration(cfg.Server.DiagnosticsTimeoutSeconds) * time.Second
	if store == nil {
		return diagnostics.New(nil, settings, timeout)
	}
	return diagnostics.New(store, settings, timeout)
}
