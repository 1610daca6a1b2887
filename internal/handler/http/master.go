package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	"github.com/kreastudio/finance-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)

	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)

	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(svc master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: svc}
}

// activeOnly reads the ?active=true list filter.
func activeOnly(r *http.Request) bool {
	return r.URL.Query().Get("active") == "true"
}

func (h *MasterHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProduct decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateProduct(r.Context(), req)
	if err != nil {
		slog.Error("CreateProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", created)
}

func (h *MasterHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	productResp, err := h.masterService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, productResp)
}

func (h *MasterHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.masterService.ListProducts(r.Context(), activeOnly(r))
	if err != nil {
		slog.Error("ListProducts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, products)
}

func (h *MasterHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProduct decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.masterService.UpdateProduct(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *MasterHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Product deleted", nil)
}

func (h *MasterHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateTask(r.Context(), req)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", created)
}

func (h *MasterHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	taskResp, err := h.masterService.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, taskResp)
}

func (h *MasterHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.masterService.ListTasks(r.Context(), activeOnly(r))
	if err != nil {
		slog.Error("ListTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

func (h *MasterHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.masterService.UpdateTask(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *MasterHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteTask service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task deleted", nil)
}

func (h *MasterHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

func (h *MasterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeResp, err := h.masterService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employeeResp)
}

func (h *MasterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.masterService.ListEmployees(r.Context(), activeOnly(r))
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

func (h *MasterHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.masterService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *MasterHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}
