package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
)

type ClientService interface {
	Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error)
	Get(ctx context.Context, id string) (client.ClientResponse, error)
	List(ctx context.Context) ([]client.ClientResponse, error)
	Update(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

type clientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) ClientService {
	return &clientServiceImpl{clientRepo: clientRepo}
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:         c.ID,
		ClientCode: c.ClientCode,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}

func (s *clientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	entity := client.Client{
		ID:         uuid.New().String(),
		ClientCode: req.ClientCode,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
	}

	created, err := s.clientRepo.Create(ctx, entity)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toResponse(created), nil
}

func (s *clientServiceImpl) Get(ctx context.Context, id string) (client.ClientResponse, error) {
	entity, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toResponse(entity), nil
}

func (s *clientServiceImpl) List(ctx context.Context) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func (s *clientServiceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := s.clientRepo.Update(ctx, req); err != nil {
		return client.ClientResponse{}, err
	}

	entity, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to reload client: %w", err)
	}
	return toResponse(entity), nil
}

func (s *clientServiceImpl) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}
