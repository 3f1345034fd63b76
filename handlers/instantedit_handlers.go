package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"quickreel/backend/internal/preview"
	"quickreel/backend/utils"
)

var validate = validator.New()

// InstantEditRequest defines the expected JSON body for an instant edit.
// The branding fields are accepted but not yet applied to the preview.
type InstantEditRequest struct {
	TemplateID string   `json:"template_id" validate:"required"`
	Assets     []string `json:"assets"`
	Title      *string  `json:"title,omitempty"`
	Subtitle   *string  `json:"subtitle,omitempty"`
	BrandColor *string  `json:"brand_color,omitempty"`
	LogoURL    *string  `json:"logo_url,omitempty"`
}

// InstantEditSuccessResponse defines the structure for a successful instant-edit response.
type InstantEditSuccessResponse struct {
	Status string            `json:"status"`
	Data   preview.Selection `json:"data"`
}

// InstantEdit godoc
// @Summary Apply a mock instant edit
// @Description Resolves the template and picks a preview from the submitted asset references: first video, else first image, else a placeholder.
// @Tags editing
// @Accept json
// @Produce json
// @Param request body InstantEditRequest true "Template id and asset references"
// @Success 200 {object} InstantEditSuccessResponse "Preview selected"
// @Failure 400 {object} ErrorResponse "Missing template id or empty asset list"
// @Failure 404 {object} ErrorResponse "Unknown template id"
// @Router /api/instant-edit [post]
func (h *ApplicationHandler) InstantEdit(c *fiber.Ctx) error {
	payload := new(InstantEditRequest)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Errorf("Error parsing instant-edit payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	if err := validate.Struct(payload); err != nil {
		h.Logger.Errorf("Validation error for instant-edit payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Validation failed: %s", strings.Join(utils.FormatValidationErrors(err), "; ")))
	}

	selection, err := h.Selector.Select(payload.TemplateID, payload.Assets)
	if err != nil {
		return err
	}

	h.Logger.Infof("Instant edit with template %s selected %s preview from %d asset(s)",
		payload.TemplateID, selection.PreviewType, len(selection.UsedAssets))
	return utils.RespondWithJSON(c, fiber.StatusOK, selection)
}
