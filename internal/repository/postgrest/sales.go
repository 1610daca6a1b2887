package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/shopspring/decimal"
)

type salesRepository struct {
	client *postgrest.Client
}

func NewSalesRepository(c *postgrest.Client) sales.TransactionRepository {
	return &salesRepository{client: c}
}

type salesRow struct {
	ID            string          `json:"id"`
	Date          restDate        `json:"tanggal"`
	InvoiceNumber string          `json:"no_invoice"`
	ClientCode    string          `json:"id_klien"`
	ProductCode   string          `json:"id_produk"`
	ProductName   string          `json:"nama_produk"`
	ItemType      string          `json:"jenis_item"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"harga_satuan"`
	Discount      decimal.Decimal `json:"diskon"`
	TotalBilled   decimal.Decimal `json:"total_tagihan"`
	CreatedAt     restTime        `json:"created_at,omitzero"`
	UpdatedAt     restTime        `json:"updated_at,omitzero"`
}

func (r salesRow) toDomain() sales.Transaction {
	return sales.Transaction{
		ID:            r.ID,
		Date:          r.Date.Time,
		InvoiceNumber: r.InvoiceNumber,
		ClientCode:    r.ClientCode,
		ProductCode:   r.ProductCode,
		ProductName:   r.ProductName,
		ItemType:      r.ItemType,
		Qty:           r.Qty,
		UnitPrice:     r.UnitPrice,
		Discount:      r.Discount,
		TotalBilled:   r.TotalBilled,
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
	}
}

func (r *salesRepository) Create(ctx context.Context, newTransaction sales.Transaction) (sales.Transaction, error) {
	body := salesRow{
		ID:            newTransaction.ID,
		Date:          restDate{newTransaction.Date},
		InvoiceNumber: newTransaction.InvoiceNumber,
		ClientCode:    newTransaction.ClientCode,
		ProductCode:   newTransaction.ProductCode,
		ProductName:   newTransaction.ProductName,
		ItemType:      newTransaction.ItemType,
		Qty:           newTransaction.Qty,
		UnitPrice:     newTransaction.UnitPrice,
		Discount:      newTransaction.Discount,
		TotalBilled:   newTransaction.TotalBilled,
	}

	var rows []salesRow
	err := r.client.From("transaksi_penjualan").Insert(ctx, []salesRow{body}, &rows)
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("failed to create sales transaction: %w", err)
	}
	if len(rows) == 0 {
		return sales.Transaction{}, fmt.Errorf("failed to create sales transaction: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *salesRepository) GetByID(ctx context.Context, id string) (sales.Transaction, error) {
	var rows []salesRow
	err := r.client.From("transaksi_penjualan").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("failed to get sales transaction: %w", err)
	}
	if len(rows) == 0 {
		return sales.Transaction{}, sales.ErrTransactionNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *salesRepository) List(ctx context.Context, filter sales.Filter) ([]sales.Transaction, error) {
	q := r.client.From("transaksi_penjualan")
	if !filter.DateFrom.IsZero() {
		q = q.Gte("tanggal", filter.DateFrom.Format(restDateLayout))
	}
	if !filter.DateTo.IsZero() {
		q = q.Lte("tanggal", filter.DateTo.Format(restDateLayout))
	}
	q = q.Order("tanggal", true)

	var rows []salesRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list sales transactions: %w", err)
	}

	transactions := make([]sales.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.toDomain())
	}
	return transactions, nil
}

func (r *salesRepository) Update(ctx context.Context, req sales.UpdateTransactionRequest) error {
	patch := patchBase()
	if req.Date != nil {
		patch["tanggal"] = *req.Date
	}
	if req.Qty != nil {
		patch["qty"] = *req.Qty
	}
	if req.UnitPrice != nil {
		patch["harga_satuan"] = *req.UnitPrice
	}
	if req.Discount != nil {
		patch["diskon"] = *req.Discount
	}
	if req.TotalBilled != nil {
		patch["total_tagihan"] = *req.TotalBilled
	}

	var rows []salesRow
	err := r.client.From("transaksi_penjualan").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update sales transaction: %w", err)
	}
	if len(rows) == 0 {
		return sales.ErrTransactionNotFound
	}
	return nil
}

func (r *salesRepository) Delete(ctx context.Context, id string) error {
	var rows []salesRow
	err := r.client.From("transaksi_penjualan").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete sales transaction: %w", err)
	}
	if len(rows) == 0 {
		return sales.ErrTransactionNotFound
	}
	return nil
}
