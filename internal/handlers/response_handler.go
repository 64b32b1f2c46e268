package handlers

import (
	"fmt"
	"net/http"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/services"
	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	BaseHandler
	responseService services.ResponseService
	exportService   services.ExportService
}

func NewResponseHandler(responseService services.ResponseService, exportService services.ExportService, logger utils.Logger) *ResponseHandler {
	return &ResponseHandler{
		BaseHandler:     NewBaseHandler(logger),
		responseService: responseService,
		exportService:   exportService,
	}
}

// ListFormResponses returns the responses of a form, newest first
// @Summary List responses for a form
// @Tags responses
// @Produce json
// @Param formId path string true "Form ID"
// @Success 200 {array} models.Response
// @Failure 500 {object} ErrorResponse
// @Router /api/responses/form/{formId} [get]
func (h *ResponseHandler) ListFormResponses(c *gin.Context) {
	formID := ParseStringIDParam(c, "formId")
	if formID == "" {
		return
	}

	responses, err := h.responseService.ListByForm(c.Request.Context(), formID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// SubmitResponse stores a response as sent
// @Summary Submit response
// @Tags responses
// @Accept json
// @Produce json
// @Param response body models.Response true "Response data"
// @Success 201 {object} models.Response
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/responses [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var response models.Response
	if !h.bindJSON(c, &response) {
		return
	}

	h.LogRequest(c, "Submitting response", "form_id", response.FormID, "answers", len(response.Answers))

	created, err := h.responseService.Submit(c.Request.Context(), &response)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetResponse returns a response with its form inlined
// @Summary Get response
// @Tags responses
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/responses/{id} [get]
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	response, err := h.responseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportFormResponses streams the responses of a form as an xlsx workbook
// @Summary Export responses
// @Tags responses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param formId path string true "Form ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/responses/form/{formId}/export [get]
func (h *ResponseHandler) ExportFormResponses(c *gin.Context) {
	formID := ParseStringIDParam(c, "formId")
	if formID == "" {
		return
	}

	h.LogRequest(c, "Exporting responses", "form_id", formID)

	file, err := h.exportService.ExportResponses(c.Request.Context(), formID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
