package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/api/http/handler"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/middleware"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	limit := middleware.ContactLimiter(r.p.Redis, r.p.Cfg.Server.RateLimit.ContactPerMinute)
	api.Post("/contact", limit, h.Submit)
}
