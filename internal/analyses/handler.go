package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/util"
)

// Handler exposes the analysis endpoints.
type Handler struct {
	Service        *Service
	MaxUploadBytes int64
}

func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{Service: service, MaxUploadBytes: maxUploadBytes}
}

// Create handles POST /api/v1/analyses. It accepts a multipart form with a
// "resume" file part and a "jobDescription" text field and responds with the
// completed analysis.
func (h *Handler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "resume file exceeds the upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid resume file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "could not read resume file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "resume file exceeds the upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "could not read resume file", nil)
		return
	}

	req := AnalyzeRequest{
		FileName:       fileName,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		ResumeData:     data,
		JobDescription: c.PostForm("jobDescription"),
		PromptVersion:  strings.TrimSpace(c.PostForm("promptVersion")),
	}

	analysis, err := h.Service.Analyze(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, analysis)
}

// Get handles GET /api/v1/analyses/:id.
func (h *Handler) Get(c *gin.Context) {
	analysis, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}

// writeServiceError maps service errors onto the response envelope.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, userMessage(err, ErrInvalidInput), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "analysis not found or expired", nil)
	case errors.Is(err, ErrExternalService):
		respond.Error(c, http.StatusBadGateway, ErrorCodeExternalService, userMessage(err, ErrExternalService), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "internal error", nil)
	}
}

// userMessage strips the sentinel prefix so clients see only the detail text.
func userMessage(err error, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
