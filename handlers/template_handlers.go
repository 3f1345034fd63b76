package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quickreel/backend/models"
)

// TemplateListData wraps the catalog inside the response envelope.
type TemplateListData struct {
	Templates []models.Template `json:"templates"`
}

// TemplateListResponse defines the structure for a successful catalog response.
type TemplateListResponse struct {
	Status string           `json:"status"`
	Data   TemplateListData `json:"data"`
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListTemplates godoc
// @Summary List templates
// @Description Returns the full template catalog in declaration order.
// @Tags templates
// @Produce json
// @Success 200 {object} TemplateListResponse "Catalog returned"
// @Router /api/templates [get]
func (h *ApplicationHandler) ListTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(TemplateListResponse{
		Status: "success",
		Data:   TemplateListData{Templates: h.Catalog.List()},
	})
}
