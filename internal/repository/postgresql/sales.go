package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type salesRepository struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.TransactionRepository {
	return &salesRepository{db: db}
}

const salesColumns = `id, tanggal, no_invoice, id_klien, id_produk, nama_produk, jenis_item,
		qty, harga_satuan, diskon, total_tagihan, created_at, updated_at`

func scanTransaction(row pgx.Row) (sales.Transaction, error) {
	var t sales.Transaction
	err := row.Scan(
		&t.ID, &t.Date, &t.InvoiceNumber, &t.ClientCode, &t.ProductCode, &t.ProductName, &t.ItemType,
		&t.Qty, &t.UnitPrice, &t.Discount, &t.TotalBilled, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *salesRepository) Create(ctx context.Context, newTransaction sales.Transaction) (sales.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO transaksi_penjualan (id, tanggal, no_invoice, id_klien, id_produk, nama_produk,
			jenis_item, qty, harga_satuan, diskon, total_tagihan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, salesColumns)

	t, err := scanTransaction(q.QueryRow(ctx, query,
		newTransaction.ID, newTransaction.Date, newTransaction.InvoiceNumber, newTransaction.ClientCode,
		newTransaction.ProductCode, newTransaction.ProductName, newTransaction.ItemType,
		newTransaction.Qty, newTransaction.UnitPrice, newTransaction.Discount, newTransaction.TotalBilled,
	))
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("failed to create sales transaction: %w", err)
	}

	return t, nil
}

func (r *salesRepository) GetByID(ctx context.Context, id string) (sales.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM transaksi_penjualan WHERE id = $1`, salesColumns)

	t, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sales.Transaction{}, sales.ErrTransactionNotFound
		}
		return sales.Transaction{}, fmt.Errorf("failed to get sales transaction: %w", err)
	}

	return t, nil
}

func (r *salesRepository) List(ctx context.Context, filter sales.Filter) ([]sales.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM transaksi_penjualan`, salesColumns)
	var conds []string
	var args []interface{}

	if !filter.DateFrom.IsZero() {
		args = append(args, filter.DateFrom)
		conds = append(conds, fmt.Sprintf("tanggal >= $%d", len(args)))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, filter.DateTo)
		conds = append(conds, fmt.Sprintf("tanggal <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY tanggal, no_invoice"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales transactions: %w", err)
	}
	defer rows.Close()

	var transactions []sales.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sales transactions: %w", err)
	}

	return transactions, nil
}

func (r *salesRepository) Update(ctx context.Context, req sales.UpdateTransactionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Date != nil {
		setParts = append(setParts, fmt.Sprintf("tanggal = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.Qty != nil {
		setParts = append(setParts, fmt.Sprintf("qty = $%d", argIdx))
		args = append(args, *req.Qty)
		argIdx++
	}
	if req.UnitPrice != nil {
		setParts = append(setParts, fmt.Sprintf("harga_satuan = $%d", argIdx))
		args = append(args, *req.UnitPrice)
		argIdx++
	}
	if req.Discount != nil {
		setParts = append(setParts, fmt.Sprintf("diskon = $%d", argIdx))
		args = append(args, *req.Discount)
		argIdx++
	}
	if req.TotalBilled != nil {
		setParts = append(setParts, fmt.Sprintf("total_tagihan = $%d", argIdx))
		args = append(args, *req.TotalBilled)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE transaksi_penjualan
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sales.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to update sales transaction: %w", err)
	}

	return nil
}

func (r *salesRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM transaksi_penjualan WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sales.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete sales transaction: %w", err)
	}

	return nil
}
