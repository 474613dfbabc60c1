package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/service/project"
)

type ProjectHandler struct {
	svc project.Service
}

func NewProjectHandler(svc project.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GET /api/projects
func (h *ProjectHandler) List(c fiber.Ctx) error {
	return ok(c, h.svc.List())
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c fiber.Ctx) error {
	p, err := h.svc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, err)
	}
	return ok(c, p)
}
