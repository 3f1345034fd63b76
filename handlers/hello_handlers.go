package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Root greets callers hitting the bare origin.
func (h *ApplicationHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hello from the QuickReel backend!",
	})
}

// Hello greets callers of the API prefix.
func (h *ApplicationHandler) Hello(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hello from the backend API!",
	})
}
