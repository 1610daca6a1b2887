package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalesService interface {
	Create(ctx context.Context, req sales.CreateTransactionRequest) (sales.TransactionResponse, error)
	Get(ctx context.Context, id string) (sales.TransactionResponse, error)
	List(ctx context.Context, filter sales.Filter) ([]sales.TransactionResponse, error)
	Update(ctx context.Context, req sales.UpdateTransactionRequest) (sales.TransactionResponse, error)
	Delete(ctx context.Context, id string) error
}

type salesServiceImpl struct {
	salesRepo   sales.TransactionRepository
	clientRepo  client.ClientRepository
	productRepo product.ProductRepository
}

func NewSalesService(
	salesRepo sales.TransactionRepository,
	clientRepo client.ClientRepository,
	productRepo product.ProductRepository,
) SalesService {
	return &salesServiceImpl{
		salesRepo:   salesRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

// totalBilled is the single place the line total is computed: qty times unit
// price, minus the line discount.
func totalBilled(qty int, unitPrice, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty))).Sub(discount)
}

func toResponse(t sales.Transaction) sales.TransactionResponse {
	return sales.TransactionResponse{
		ID:            t.ID,
		Date:          t.Date.Format("2006-01-02"),
		InvoiceNumber: t.InvoiceNumber,
		ClientCode:    t.ClientCode,
		ProductCode:   t.ProductCode,
		ProductName:   t.ProductName,
		ItemType:      t.ItemType,
		Qty:           t.Qty,
		UnitPrice:     t.UnitPrice,
		Discount:      t.Discount,
		TotalBilled:   t.TotalBilled,
	}
}

func (s *salesServiceImpl) Create(ctx context.Context, req sales.CreateTransactionRequest) (sales.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.TransactionResponse{}, err
	}

	if _, err := s.clientRepo.GetByCode(ctx, req.ClientCode); err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return sales.TransactionResponse{}, sales.ErrUnknownClient
		}
		return sales.TransactionResponse{}, fmt.Errorf("failed to resolve client: %w", err)
	}

	productData, err := s.productRepo.GetByCode(ctx, req.ProductCode)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return sales.TransactionResponse{}, sales.ErrUnknownProduct
		}
		return sales.TransactionResponse{}, fmt.Errorf("failed to resolve product: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)

	// Product name and item type are snapshotted onto the line so later
	// catalog edits do not rewrite historical invoices.
	entity := sales.Transaction{
		ID:            uuid.New().String(),
		Date:          date,
		InvoiceNumber: req.InvoiceNumber,
		ClientCode:    req.ClientCode,
		ProductCode:   req.ProductCode,
		ProductName:   productData.Name,
		ItemType:      string(productData.Category),
		Qty:           req.Qty,
		UnitPrice:     req.UnitPrice,
		Discount:      req.Discount,
		TotalBilled:   totalBilled(req.Qty, req.UnitPrice, req.Discount),
	}

	created, err := s.salesRepo.Create(ctx, entity)
	if err != nil {
		return sales.TransactionResponse{}, err
	}
	return toResponse(created), nil
}

func (s *salesServiceImpl) Get(ctx context.Context, id string) (sales.TransactionResponse, error) {
	entity, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return sales.TransactionResponse{}, err
	}
	return toResponse(entity), nil
}

func (s *salesServiceImpl) List(ctx context.Context, filter sales.Filter) ([]sales.TransactionResponse, error) {
	transactions, err := s.salesRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]sales.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, toResponse(t))
	}
	return responses, nil
}

func (s *salesServiceImpl) Update(ctx context.Context, req sales.UpdateTransactionRequest) (sales.TransactionResponse, error) {
	if req.Date != nil {
		if _, ok := validator.IsValidDate(*req.Date); !ok {
			return sales.TransactionResponse{}, validator.ValidationErrors{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}
		}
	}
	if req.Qty != nil && *req.Qty <= 0 {
		return sales.TransactionResponse{}, validator.ValidationErrors{
			{Field: "qty", Message: "must be positive"},
		}
	}

	// Any change to qty, unit price or discount recomputes the stored total.
	if req.Qty != nil || req.UnitPrice != nil || req.Discount != nil {
		current, err := s.salesRepo.GetByID(ctx, req.ID)
		if err != nil {
			return sales.TransactionResponse{}, err
		}

		qty := current.Qty
		if req.Qty != nil {
			qty = *req.Qty
		}
		unitPrice := current.UnitPrice
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		discount := current.Discount
		if req.Discount != nil {
			discount = *req.Discount
		}

		total := totalBilled(qty, unitPrice, discount)
		req.TotalBilled = &total
	}

	if err := s.salesRepo.Update(ctx, req); err != nil {
		return sales.TransactionResponse{}, err
	}

	entity, err := s.salesRepo.GetByID(ctx, req.ID)
	if err != nil {
		return sales.TransactionResponse{}, fmt.Errorf("failed to reload sales transaction: %w", err)
	}
	return toResponse(entity), nil
}

func (s *salesServiceImpl) Delete(ctx context.Context, id string) error {
	return s.salesRepo.Delete(ctx, id)
}

