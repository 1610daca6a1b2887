package sales

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, newTransaction Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter Filter) ([]Transaction, error)
	Update(ctx context.Context, req UpdateTransactionRequest) error
	Delete(ctx context.Context, id string) error
}
