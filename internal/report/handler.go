package report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/respond"
)

// Handler serves report downloads for stored analyses.
type Handler struct {
	Service *analyses.Service
	Now     func() time.Time
}

func NewHandler(service *analyses.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

// JSON handles GET /api/v1/analyses/:id/report.json.
func (h *Handler) JSON(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	body, err := RenderJSON(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, analyses.ErrorCodeInternal, "could not render report", nil)
		return
	}
	metrics.IncReportRendered()
	c.Header("Content-Disposition", attachment(doc.AnalysisID, "json"))
	c.Data(http.StatusOK, "application/json", body)
}

// PDF handles GET /api/v1/analyses/:id/report.pdf.
func (h *Handler) PDF(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	body, err := RenderPDF(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, analyses.ErrorCodeInternal, "could not render report", nil)
		return
	}
	metrics.IncReportRendered()
	c.Header("Content-Disposition", attachment(doc.AnalysisID, "pdf"))
	c.Data(http.StatusOK, "application/pdf", body)
}

func (h *Handler) document(c *gin.Context) (Document, bool) {
	analysis, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, analyses.ErrNotFound):
			respond.Error(c, http.StatusNotFound, analyses.ErrorCodeNotFound, "analysis not found or expired", nil)
		case errors.Is(err, analyses.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, analyses.ErrorCodeValidation, "analysis id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, analyses.ErrorCodeInternal, "internal error", nil)
		}
		return Document{}, false
	}
	c.Set("analysisId", analysis.ID)
	return NewDocument(analysis, h.Now()), true
}

func attachment(analysisID, ext string) string {
	return fmt.Sprintf(`attachment; filename="resume-analysis-%s.%s"`, analysisID, ext)
}
