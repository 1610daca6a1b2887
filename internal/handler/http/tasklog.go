package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	tasklogService "github.com/kreastudio/finance-backend-go/internal/service/tasklog"
)

type TaskLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TaskLogHandlerImpl struct {
	taskLogService tasklogService.TaskLogService
}

func NewTaskLogHandler(svc tasklogService.TaskLogService) TaskLogHandler {
	return &TaskLogHandlerImpl{taskLogService: svc}
}

// Create implements TaskLogHandler.
func (h *TaskLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tasklog.CreateTaskLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTaskLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskLogService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateTaskLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task log created", created)
}

// Get implements TaskLogHandler.
func (h *TaskLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	logResp, err := h.taskLogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, logResp)
}

// List implements TaskLogHandler.
func (h *TaskLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := tasklog.Filter{
		Period:       r.URL.Query().Get("period"),
		EmployeeCode: r.URL.Query().Get("employee"),
	}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := tasklog.Status(statusParam)
		if status != tasklog.StatusPending && status != tasklog.StatusApproved {
			response.BadRequest(w, "Invalid status filter", map[string]string{
				"status": "must be 'Pending' or 'Approved'",
			})
			return
		}
		filter.Status = &status
	}

	logs, err := h.taskLogService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListTaskLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, logs)
}

// Approve implements TaskLogHandler.
func (h *TaskLogHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approved, err := h.taskLogService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ApproveTaskLog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task log approved", approved)
}

// Reject implements TaskLogHandler.
func (h *TaskLogHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	rejected, err := h.taskLogService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("RejectTaskLog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task log returned to pending", rejected)
}

// Delete implements TaskLogHandler.
func (h *TaskLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskLogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteTaskLog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task log deleted", nil)
}
