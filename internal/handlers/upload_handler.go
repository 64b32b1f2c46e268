package handlers

import (
	"errors"
	"net/http"

	"github.com/formcraft/formbuilder-api/internal/services"
	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService, logger utils.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   NewBaseHandler(logger),
		uploadService: uploadService,
	}
}

// UploadImage forwards one image to the media host
// @Summary Upload image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} media.UploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.RespondWithError(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		h.handleServiceError(c, services.ErrNoImageProvided)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer file.Close()

	h.LogRequest(c, "Uploading image", "filename", fileHeader.Filename, "size", fileHeader.Size)

	result, err := h.uploadService.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteImage removes an image from the media host. Identifiers include the
// folder, so the route uses a catch-all parameter.
// @Summary Delete image
// @Tags upload
// @Produce json
// @Param identifier path string true "Image identifier"
// @Success 200 {object} media.DeleteResult
// @Failure 500 {object} ErrorResponse
// @Router /api/upload/image/{identifier} [delete]
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	identifier := ParseStringIDParam(c, "identifier")
	if identifier == "" {
		return
	}

	h.LogRequest(c, "Deleting image", "identifier", identifier)

	result, err := h.uploadService.DeleteImage(c.Request.Context(), identifier)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
