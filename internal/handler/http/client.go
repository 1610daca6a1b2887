package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	clientService "github.com/kreastudio/finance-backend-go/internal/service/client"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService clientService.ClientService
}

func NewClientHandler(svc clientService.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: svc}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", created)
}

// Get implements ClientHandler.
func (h *ClientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clientResp, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clientResp)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		slog.Error("ListClients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, clients)
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.clientService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted", nil)
}
