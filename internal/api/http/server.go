package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/router"
	"github.com/Alijeyrad/portfolio_backend/pkg/constants"
	"github.com/Alijeyrad/portfolio_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := NewApp(p.Cfg, p.Router, p.OTel != nil)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// NewApp builds the fiber application with middleware and routes but does not
// start listening.
func NewApp(cfg *config.Config, r *router.Router, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	fcfg := fiber.Config{
		AppName:      constants.AppName,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ErrorHandler: errorHandler,
	}
	applyTrustedProxies(&fcfg, cfg.Server.TrustedProxies)
	app := fiber.New(fcfg)

	if tracing && cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware())
	}

	configureGlobalMiddleware(app, cfg)

	r.Register(app)
	return app
}

// applyTrustedProxies makes c.IP() report the forwarded client address for
// requests arriving from one of proxies. The limiter keys on c.IP().
func applyTrustedProxies(fcfg *fiber.Config, proxies []string) {
	if len(proxies) == 0 {
		return
	}
	fcfg.TrustProxy = true
	fcfg.ProxyHeader = fiber.HeaderXForwardedFor
	fcfg.EnableIPValidation = true
	fcfg.TrustProxyConfig = fiber.TrustProxyConfig{Proxies: proxies}
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(corsConfig(cfg.Server.CORS)))
	}
	if cfg.IsProduction() {
		app.Use(helmet.New())
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:" + middleware.LocalRequestID + "}] ${method} ${url} ${status} ${latency}\n",
	}))
}

// corsConfig turns a wildcard origin into a reflecting origin func when
// credentials are allowed, since browsers reject "*" with credentials.
func corsConfig(c config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     c.AllowMethods,
		AllowHeaders:     c.AllowHeaders,
		ExposeHeaders:    c.ExposeHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAgeSeconds,
	}

	switch {
	case slices.Contains(c.AllowOrigins, "*") && c.AllowCredentials:
		out.AllowOriginsFunc = func(string) bool { return true }
	case len(c.AllowOrigins) > 0:
		out.AllowOrigins = c.AllowOrigins
	}
	return out
}

func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		slog.ErrorContext(c.Context(), "unhandled request error", "error", err, "path", c.Path())
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
