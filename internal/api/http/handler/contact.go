package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// POST /api/contact
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req schema.Message
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			return unprocessable(c, verr.Fields)
		}
		return badRequest(c, err.Error())
	}

	id, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, fiber.Map{"status": "ok", "id": id})
}
