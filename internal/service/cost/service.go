package cost

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
)

// CostService covers both expense ledgers: dated operational costs and
// recurring monthly fixed costs.
type CostService interface {
	CreateOperational(ctx context.Context, req cost.CreateOperationalCostRequest) (cost.OperationalCostResponse, error)
	GetOperational(ctx context.Context, id string) (cost.OperationalCostResponse, error)
	ListOperational(ctx context.Context, filter cost.Filter) ([]cost.OperationalCostResponse, error)
	UpdateOperational(ctx context.Context, req cost.UpdateOperationalCostRequest) (cost.OperationalCostResponse, error)
	DeleteOperational(ctx context.Context, id string) error

	CreateFixed(ctx context.Context, req cost.CreateFixedCostRequest) (cost.FixedCostResponse, error)
	GetFixed(ctx context.Context, id string) (cost.FixedCostResponse, error)
	ListFixed(ctx context.Context, activeOnly bool) ([]cost.FixedCostResponse, error)
	UpdateFixed(ctx context.Context, req cost.UpdateFixedCostRequest) (cost.FixedCostResponse, error)
	DeleteFixed(ctx context.Context, id string) error
}

type costServiceImpl struct {
	operationalRepo cost.OperationalCostRepository
	fixedRepo       cost.FixedCostRepository
}

func NewCostService(operationalRepo cost.OperationalCostRepository, fixedRepo cost.FixedCostRepository) CostService {
	return &costServiceImpl{
		operationalRepo: operationalRepo,
		fixedRepo:       fixedRepo,
	}
}

func toOperationalResponse(c cost.OperationalCost) cost.OperationalCostResponse {
	return cost.OperationalCostResponse{
		ID:          c.ID,
		Date:        c.Date.Format("2006-01-02"),
		Description: c.Description,
		Amount:      c.Amount,
		InvoiceRef:  c.InvoiceRef,
		Category:    c.Category,
	}
}

func (s *costServiceImpl) CreateOperational(ctx context.Context, req cost.CreateOperationalCostRequest) (cost.OperationalCostResponse, error) {
	if err := req.Validate(); err != nil {
		return cost.OperationalCostResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	entity := cost.OperationalCost{
		ID:          uuid.New().String(),
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		InvoiceRef:  req.InvoiceRef,
		Category:    req.Category,
	}

	created, err := s.operationalRepo.Create(ctx, entity)
	if err != nil {
		return cost.OperationalCostResponse{}, err
	}
	return toOperationalResponse(created), nil
}

func (s *costServiceImpl) GetOperational(ctx context.Context, id string) (cost.OperationalCostResponse, error) {
	entity, err := s.operationalRepo.GetByID(ctx, id)
	if err != nil {
		return cost.OperationalCostResponse{}, err
	}
	return toOperationalResponse(entity), nil
}

func (s *costServiceImpl) ListOperational(ctx context.Context, filter cost.Filter) ([]cost.OperationalCostResponse, error) {
	costs, err := s.operationalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]cost.OperationalCostResponse, 0, len(costs))
	for _, c := range costs {
		responses = append(responses, toOperationalResponse(c))
	}
	return responses, nil
}

func (s *costServiceImpl) UpdateOperational(ctx context.Context, req cost.UpdateOperationalCostRequest) (cost.OperationalCostResponse, error) {
	if req.Date != nil {
		if _, ok := validator.IsValidDate(*req.Date); !ok {
			return cost.OperationalCostResponse{}, validator.ValidationErrors{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}
		}
	}

	if err := s.operationalRepo.Update(ctx, req); err != nil {
		return cost.OperationalCostResponse{}, err
	}

	entity, err := s.operationalRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cost.OperationalCostResponse{}, fmt.Errorf("failed to reload operational cost: %w", err)
	}
	return toOperationalResponse(entity), nil
}

func (s *costServiceImpl) DeleteOperational(ctx context.Context, id string) error {
	return s.operationalRepo.Delete(ctx, id)
}

func toFixedResponse(c cost.FixedCost) cost.FixedCostResponse {
	return cost.FixedCostResponse{
		ID:     c.ID,
		Name:   c.Name,
		Amount: c.Amount,
		Active: c.Active,
	}
}

func (s *costServiceImpl) CreateFixed(ctx context.Context, req cost.CreateFixedCostRequest) (cost.FixedCostResponse, error) {
	if err := req.Validate(); err != nil {
		return cost.FixedCostResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	entity := cost.FixedCost{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Amount: req.Amount,
		Active: active,
	}

	created, err := s.fixedRepo.Create(ctx, entity)
	if err != nil {
		return cost.FixedCostResponse{}, err
	}
	return toFixedResponse(created), nil
}

func (s *costServiceImpl) GetFixed(ctx context.Context, id string) (cost.FixedCostResponse, error) {
	entity, err := s.fixedRepo.GetByID(ctx, id)
	if err != nil {
		return cost.FixedCostResponse{}, err
	}
	return toFixedResponse(entity), nil
}

func (s *costServiceImpl) ListFixed(ctx context.Context, activeOnly bool) ([]cost.FixedCostResponse, error) {
	costs, err := s.fixedRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]cost.FixedCostResponse, 0, len(costs))
	for _, c := range costs {
		responses = append(responses, toFixedResponse(c))
	}
	return responses, nil
}

func (s *costServiceImpl) UpdateFixed(ctx context.Context, req cost.UpdateFixedCostRequest) (cost.FixedCostResponse, error) {
	if err := s.fixedRepo.Update(ctx, req); err != nil {
		return cost.FixedCostResponse{}, err
	}

	entity, err := s.fixedRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cost.FixedCostResponse{}, fmt.Errorf("failed to reload fixed cost: %w", err)
	}
	return toFixedResponse(entity), nil
}

func (s *costServiceImpl) DeleteFixed(ctx context.Context, id string) error {
	return s.fixedRepo.Delete(ctx, id)
}
