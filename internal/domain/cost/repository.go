package cost

import "context"

type OperationalCostRepository interface {
	Create(ctx context.Context, newCost OperationalCost) (OperationalCost, error)
	GetByID(ctx context.Context, id string) (OperationalCost, error)
	List(ctx context.Context, filter Filter) ([]OperationalCost, error)
	Update(ctx context.Context, req UpdateOperationalCostRequest) error
	Delete(ctx context.Context, id string) error
}

type FixedCostRepository interface {
	Create(ctx context.Context, newCost FixedCost) (FixedCost, error)
	GetByID(ctx context.Context, id string) (FixedCost, error)
	List(ctx context.Context, activeOnly bool) ([]FixedCost, error)
	Update(ctx context.Context, req UpdateFixedCostRequest) error
	Delete(ctx context.Context, id string) error
}
