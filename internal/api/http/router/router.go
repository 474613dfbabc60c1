package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/handler"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
	"github.com/Alijeyrad/portfolio_backend/internal/service/project"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client `optional:"true"`
	ProjectSvc     project.Service
	ContactSvc     contact.Service
	DiagnosticsSvc diagnostics.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Handlers
	projectH := handler.NewProjectHandler(r.p.ProjectSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	diagH := handler.NewDiagnosticsHandler(r.p.DiagnosticsSvc)

	app.Get("/", handler.Root)
	app.Get("/test", diagH.Check)

	api := app.Group("/api")
	r.registerProjectRoutes(api, projectH)
	r.registerContactRoutes(api, contactH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.ready(c) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// ready fails only when a configured store cannot be used. Without a store the
// project routes still work.
func (r *Router) ready(c fiber.Ctx) bool {
	switch r.p.DiagnosticsSvc.Check(c.Context()).Status {
	case diagnostics.StatusConnected, diagnostics.StatusNotConfigured:
		return true
	default:
		return false
	}
}
