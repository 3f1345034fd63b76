package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quickreel/backend/models"
	"quickreel/backend/utils"
)

// UploadSuccessResponse defines the structure for a successful upload response.
type UploadSuccessResponse struct {
	Status string              `json:"status"`
	Data   models.UploadResult `json:"data"`
}

// UploadAssets godoc
// @Summary Upload media assets
// @Description Stores one or more multipart files under server-generated names and returns their public URLs.
// @Tags assets
// @Accept mpfd
// @Produce json
// @Param files formData file true "Files to store (repeatable)"
// @Success 200 {object} UploadSuccessResponse "Batch stored"
// @Failure 400 {object} ErrorResponse "Request carried no files"
// @Failure 500 {object} ErrorResponse "A file could not be written"
// @Router /api/upload [post]
func (h *ApplicationHandler) UploadAssets(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		h.Logger.Errorf("Error reading multipart form: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Expected multipart form data with a 'files' field")
	}

	files := form.File["files"]
	h.Logger.Infof("Received upload batch of %d file(s)", len(files))

	// The base URL is taken from the inbound request so returned links work
	// behind whatever host and port the client actually reached.
	result, err := h.Store.StoreAssets(c.BaseURL(), files)
	if err != nil {
		return err
	}

	h.Logger.Infof("Stored %d file(s)", result.Count)
	return utils.RespondWithJSON(c, fiber.StatusOK, result)
}
