package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/domain/reports"
	"invoicer/internal/infrastructure/http/v1/dto"
)

// ReportService is the reporting API used by ReportHandler.
type ReportService interface {
	Summary(ctx context.Context, filter reports.SummaryFilter) (*reports.Summary, error)
}

// ReportHandler handles /reports endpoints.
type ReportHandler struct {
	*BaseHandler
	service ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, service ReportService) *ReportHandler {
	return &ReportHandler{BaseHandler: base, service: service}
}

// Summary handles GET /reports/summary?from=&to=
func (h *ReportHandler) Summary(c *gin.Context) {
	var q dto.SummaryQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSummary(summary))
}
