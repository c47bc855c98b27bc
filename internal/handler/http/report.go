package http

import (
	"net/http"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Dashboard insights
	GetInsightsReport(w http.ResponseWriter, r *http.Request)

	// Per-employee lifetime statistics
	GetEmployeeStatsReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetInsightsReport handles GET /reports/insights
func (h *reportHandlerImpl) GetInsightsReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetInsightsReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeStatsReport handles GET /reports/employee-stats
func (h *reportHandlerImpl) GetEmployeeStatsReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetEmployeeStatsReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
