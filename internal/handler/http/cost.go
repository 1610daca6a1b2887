package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	costService "github.com/kreastudio/finance-backend-go/internal/service/cost"
)

type CostHandler interface {
	CreateOperational(w http.ResponseWriter, r *http.Request)
	GetOperational(w http.ResponseWriter, r *http.Request)
	ListOperational(w http.ResponseWriter, r *http.Request)
	UpdateOperational(w http.ResponseWriter, r *http.Request)
	DeleteOperational(w http.ResponseWriter, r *http.Request)

	CreateFixed(w http.ResponseWriter, r *http.Request)
	GetFixed(w http.ResponseWriter, r *http.Request)
	ListFixed(w http.ResponseWriter, r *http.Request)
	UpdateFixed(w http.ResponseWriter, r *http.Request)
	DeleteFixed(w http.ResponseWriter, r *http.Request)
}

type CostHandlerImpl struct {
	costService costService.CostService
}

func NewCostHandler(svc costService.CostService) CostHandler {
	return &CostHandlerImpl{costService: svc}
}

func costDateFilter(r *http.Request) (cost.Filter, map[string]string) {
	var filter cost.Filter
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

func (h *CostHandlerImpl) CreateOperational(w http.ResponseWriter, r *http.Request) {
	var req cost.CreateOperationalCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOperationalCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.costService.CreateOperational(r.Context(), req)
	if err != nil {
		slog.Error("CreateOperationalCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operational cost created", created)
}

func (h *CostHandlerImpl) GetOperational(w http.ResponseWriter, r *http.Request) {
	costResp, err := h.costService.GetOperational(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, costResp)
}

func (h *CostHandlerImpl) ListOperational(w http.ResponseWriter, r *http.Request) {
	filter, details := costDateFilter(r)
	if details != nil {
		response.BadRequest(w, "Invalid date filter", details)
		return
	}

	costs, err := h.costService.ListOperational(r.Context(), filter)
	if err != nil {
		slog.Error("ListOperationalCosts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, costs)
}

func (h *CostHandlerImpl) UpdateOperational(w http.ResponseWriter, r *http.Request) {
	var req cost.UpdateOperationalCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOperationalCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.costService.UpdateOperational(r.Context(), req)
	if err != nil {
		slog.Error("UpdateOperationalCost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *CostHandlerImpl) DeleteOperational(w http.ResponseWriter, r *http.Request) {
	if err := h.costService.DeleteOperational(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteOperationalCost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Operational cost deleted", nil)
}

func (h *CostHandlerImpl) CreateFixed(w http.ResponseWriter, r *http.Request) {
	var req cost.CreateFixedCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFixedCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.costService.CreateFixed(r.Context(), req)
	if err != nil {
		slog.Error("CreateFixedCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fixed cost created", created)
}

func (h *CostHandlerImpl) GetFixed(w http.ResponseWriter, r *http.Request) {
	costResp, err := h.costService.GetFixed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, costResp)
}

func (h *CostHandlerImpl) ListFixed(w http.ResponseWriter, r *http.Request) {
	costs, err := h.costService.ListFixed(r.Context(), activeOnly(r))
	if err != nil {
		slog.Error("ListFixedCosts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, costs)
}

func (h *CostHandlerImpl) UpdateFixed(w http.ResponseWriter, r *http.Request) {
	var req cost.UpdateFixedCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateFixedCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.costService.UpdateFixed(r.Context(), req)
	if err != nil {
		slog.Error("UpdateFixedCost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *CostHandlerImpl) DeleteFixed(w http.ResponseWriter, r *http.Request) {
	if err := h.costService.DeleteFixed(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteFixedCost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Fixed cost deleted", nil)
}
