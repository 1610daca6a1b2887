package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type productRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO master_produk (id, id_produk, nama_produk, kategori, harga_jual, satuan, aktif)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, id_produk, nama_produk, kategori, harga_jual, satuan, aktif, created_at, updated_at
	`

	var p product.Product
	err := q.QueryRow(ctx, query,
		newProduct.ID, newProduct.ProductCode, newProduct.Name, newProduct.Category,
		newProduct.SellPrice, newProduct.Unit, newProduct.Active,
	).Scan(
		&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.SellPrice, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "master_produk_id_produk_key") {
			return product.Product{}, product.ErrProductCodeExists
		}
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (product.Product, error) {
	return r.getBy(ctx, "id", id)
}

func (r *productRepository) GetByCode(ctx context.Context, productCode string) (product.Product, error) {
	return r.getBy(ctx, "id_produk", productCode)
}

func (r *productRepository) getBy(ctx context.Context, column, value string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, id_produk, nama_produk, kategori, harga_jual, satuan, aktif, created_at, updated_at
		FROM master_produk
		WHERE %s = $1
	`, column)

	var p product.Product
	err := q.QueryRow(ctx, query, value).Scan(
		&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.SellPrice, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

func (r *productRepository) List(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, id_produk, nama_produk, kategori, harga_jual, satuan, aktif, created_at, updated_at
		FROM master_produk
	`
	if activeOnly {
		query += " WHERE aktif = true"
	}
	query += " ORDER BY id_produk"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.SellPrice, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, req product.UpdateProductRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("nama_produk = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("kategori = $%d", argIdx))
		args = append(args, *req.Category)
		argIdx++
	}
	if req.SellPrice != nil {
		setParts = append(setParts, fmt.Sprintf("harga_jual = $%d", argIdx))
		args = append(args, *req.SellPrice)
		argIdx++
	}
	if req.Unit != nil {
		setParts = append(setParts, fmt.Sprintf("satuan = $%d", argIdx))
		args = append(args, *req.Unit)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("aktif = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE master_produk
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM master_produk WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
