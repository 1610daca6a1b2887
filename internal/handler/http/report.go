package http

import (
	"log/slog"
	"net/http"

	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	"github.com/kreastudio/finance-backend-go/internal/pkg/period"
	reportService "github.com/kreastudio/finance-backend-go/internal/service/report"
)

type ReportHandler interface {
	ProfitPerInvoice(w http.ResponseWriter, r *http.Request)
	ProfitLoss(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportService.ReportService
}

func NewReportHandler(svc reportService.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: svc}
}

// ProfitPerInvoice implements ReportHandler.
func (h *ReportHandlerImpl) ProfitPerInvoice(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.ProfitPerInvoice(r.Context())
	if err != nil {
		slog.Error("ProfitPerInvoice service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// ProfitLoss implements ReportHandler.
func (h *ReportHandlerImpl) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	periodLabel := r.URL.Query().Get("period")
	if !period.IsValid(periodLabel) {
		response.BadRequest(w, "Invalid period", map[string]string{
			"period": "must be a period label like Jan-2025",
		})
		return
	}

	report, err := h.reportService.ProfitLoss(r.Context(), periodLabel)
	if err != nil {
		slog.Error("ProfitLoss service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
