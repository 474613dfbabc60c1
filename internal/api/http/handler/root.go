package handler

import "github.com/gofiber/fiber/v3"

const liveMessage = "Demon Slayer Portfolio API is running"

// GET /
func Root(c fiber.Ctx) error {
	return ok(c, fiber.Map{"message": liveMessage})
}
