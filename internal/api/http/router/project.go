package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/api/http/handler"
)

func (r *Router) registerProjectRoutes(api fiber.Router, h *handler.ProjectHandler) {
	projects := api.Group("/projects")
	projects.Get("/", h.List)
	projects.Get("/:id", h.Get)
}
