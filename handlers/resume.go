package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/export"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
	"github.com/pivot/backend/storage"
)

// uploadField is the multipart field carrying the résumé
const uploadField = "resume"

// ResumeHandler handles résumé analysis, parsing and export
type ResumeHandler struct {
	agent  *agent.CareerAgent
	errors ErrorMapper
}

// NewResumeHandler creates a new résumé handler
func NewResumeHandler(careerAgent *agent.CareerAgent) *ResumeHandler {
	return &ResumeHandler{
		agent:  careerAgent,
		errors: ErrorMapper{MaxUploadBytes: careerAgent.Store().MaxBytes()},
	}
}

// Analyze runs a skill gap analysis against a target position
// @Summary Analyze résumé
// @Description Upload a résumé (PDF, DOC, DOCX, ODT, PNG or JPG, up to 10MB) and a target position. The text is extracted and compared against the role by the configured LLM.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Résumé file"
// @Param targetPosition formData string true "Target job title"
// @Success 200 {object} models.AnalyzeResponse "Skill gap analysis"
// @Failure 400 {object} models.ErrorResponse "Invalid upload or missing target position"
// @Failure 500 {object} models.ErrorResponse "Extraction, configuration or provider failure"
// @Router /analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	ctx := logger.WithOperation(c.Request.Context(), "analyze")
	c.Request = c.Request.WithContext(ctx)

	upload, ok := h.receiveUpload(c)
	if !ok {
		return
	}

	targetPosition := c.PostForm("targetPosition")
	logger.Info(ctx, "analysis requested", "file", upload.Filename, "mime_type", upload.MIMEType, "size", upload.Size, "target_position", targetPosition)

	result, err := h.agent.AnalyzeResume(ctx, upload, targetPosition)
	if err != nil {
		h.errors.respondError(c, err, MsgAnalysisFailed)
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success: true,
		Data:    result,
	})
}

// ParseResume converts an uploaded résumé into structured fields
// @Summary Parse résumé
// @Description Upload a résumé and receive structured contact, experience, education and skills. data.rawText carries the extracted text.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Résumé file"
// @Success 200 {object} models.ParseResponse "Structured résumé"
// @Failure 400 {object} models.ErrorResponse "Invalid upload"
// @Failure 500 {object} models.ErrorResponse "Extraction, configuration or provider failure"
// @Router /resume/parse [post]
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	ctx := logger.WithOperation(c.Request.Context(), "parse")
	c.Request = c.Request.WithContext(ctx)

	upload, ok := h.receiveUpload(c)
	if !ok {
		return
	}

	logger.Info(ctx, "parse requested", "file", upload.Filename, "mime_type", upload.MIMEType, "size", upload.Size)

	data, err := h.agent.ParseResume(ctx, upload)
	if err != nil {
		h.errors.respondError(c, err, MsgParseFailed)
		return
	}

	c.JSON(http.StatusOK, models.ParseResponse{
		Success: true,
		Data:    data,
	})
}

// ExportResume renders a structured résumé as a downloadable file
// @Summary Export résumé
// @Description Render résumé data as JSON, Markdown, PDF or ODT. The response body is the file itself.
// @Tags Resume
// @Accept json
// @Produce application/json
// @Produce text/markdown
// @Produce application/pdf
// @Produce application/vnd.oasis.opendocument.text
// @Param request body models.ExportRequest true "Résumé data and target format"
// @Success 200 {file} file "Rendered résumé"
// @Failure 400 {object} models.ErrorResponse "Missing fields or unsupported format"
// @Failure 413 {object} models.ErrorResponse "Request body too large"
// @Failure 500 {object} models.ErrorResponse "Rendering failed"
// @Router /resume/export [post]
func (h *ResumeHandler) ExportResume(c *gin.Context) {
	ctx := logger.WithOperation(c.Request.Context(), "export")
	c.Request = c.Request.WithContext(ctx)

	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			abortWithError(c, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		logger.Warn(ctx, "invalid export body", "error", err)
		abortWithError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if req.ResumeData == nil || req.Format == "" {
		abortWithError(c, http.StatusBadRequest, MsgExportFields)
		return
	}

	file, err := export.Export(req.ResumeData, req.Format)
	if err != nil {
		h.errors.respondError(c, err, MsgExportFailed)
		return
	}

	logger.Info(ctx, "resume exported", "format", req.Format, "bytes", len(file.Content))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// receiveUpload stores the multipart résumé. On failure the error response
// has been written and ok is false.
func (h *ResumeHandler) receiveUpload(c *gin.Context) (*storage.Upload, bool) {
	ctx := c.Request.Context()

	header, err := c.FormFile(uploadField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			abortWithError(c, http.StatusBadRequest, h.errors.TooLargeMessage())
			return nil, false
		}
		logger.Warn(ctx, "no resume file in request", "error", err)
		abortWithError(c, http.StatusBadRequest, MsgNoFile)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.errors.respondError(c, fmt.Errorf("open multipart file: %w", err), MsgNoFile)
		return nil, false
	}
	defer file.Close()

	upload, err := h.agent.Store().Save(ctx, file, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		h.errors.respondError(c, err, "Failed to store upload")
		return nil, false
	}
	return upload, true
}
