package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	payrollService "github.com/kreastudio/finance-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: svc}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("GeneratePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated", "period", req.Period, "records", len(records))
	response.Created(w, "Payroll generated", records)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.Filter{Period: r.URL.Query().Get("period")}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := payroll.Status(statusParam)
		if status != payroll.StatusDraft && status != payroll.StatusFinal {
			response.BadRequest(w, "Invalid status filter", map[string]string{
				"status": "must be 'Draft' or 'Final'",
			})
			return
		}
		filter.Status = &status
	}

	records, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Finalize implements PayrollHandler.
func (h *PayrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	record, err := h.payrollService.Finalize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("FinalizePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record finalized", record)
}
