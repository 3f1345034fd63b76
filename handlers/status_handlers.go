package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Liveness check
// @Description Reports whether the service is up.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /health [get]
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "QuickReel backend is healthy",
	})
}

// TestStatus reports backend and database state for quick manual checks.
// The database probe is best-effort: a failing probe shows up in the
// payload, never as a request error.
func (h *ApplicationHandler) TestStatus(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":              "Running",
		"database":             "Not Configured",
		"connection_status":    "Not Connected",
		"supabase_url":         envStatus("SUPABASE_URL"),
		"supabase_service_key": envStatus("SUPABASE_SERVICE_KEY"),
	}

	if h.DB != nil {
		response["connection_status"] = "Connected"

		count, err := h.DB.Probe()
		if err != nil {
			h.Logger.Warnf("Database probe failed: %v", err)
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = "Connected but Error: " + msg
		} else {
			response["database"] = "Connected & Working"
			response["probe_table"] = h.DB.Table()
			response["row_count"] = count
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "Set"
	}
	return "Not Set"
}
