package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	salesService "github.com/kreastudio/finance-backend-go/internal/service/sales"
)

type SalesHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalesHandlerImpl struct {
	salesService salesService.SalesService
}

func NewSalesHandler(svc salesService.SalesService) SalesHandler {
	return &SalesHandlerImpl{salesService: svc}
}

// dateRangeFilter reads the optional ?date_from / ?date_to query bounds.
func dateRangeFilter(r *http.Request) (sales.Filter, map[string]string) {
	var filter sales.Filter
	details := map[string]string{}

	if from := r.URL.Query().Get("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			details["date_from"] = "must be a date in YYYY-MM-DD format"
		} else {
			filter.DateFrom = t
		}
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			details["date_to"] = "must be a date in YYYY-MM-DD format"
		} else {
			filter.DateTo = t
		}
	}

	if len(details) == 0 {
		return filter, nil
	}
	return filter, details
}

// Create implements SalesHandler.
func (h *SalesHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sales.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSales decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salesService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateSales service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sales transaction created", created)
}

// Get implements SalesHandler.
func (h *SalesHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	transactionResp, err := h.salesService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, transactionResp)
}

// List implements SalesHandler.
func (h *SalesHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, details := dateRangeFilter(r)
	if details != nil {
		response.BadRequest(w, "Invalid date filter", details)
		return
	}

	transactions, err := h.salesService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListSales service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, transactions)
}

// Update implements SalesHandler.
func (h *SalesHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sales.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSales decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.salesService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSales service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements SalesHandler.
func (h *SalesHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.salesService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteSales service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sales transaction deleted", nil)
}
