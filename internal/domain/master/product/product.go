package product

import (
	"context"
	"errors"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryPackage Category = "Paket"
	CategoryAddon   Category = "Tambahan"
)

type Unit string

const (
	UnitPackage Unit = "Paket"
	UnitPerson  Unit = "Orang"
	UnitFile    Unit = "File"
	UnitPrint   Unit = "Cetak"
)

// Product is a catalog entry: a photo package or a sellable add-on.
type Product struct {
	ID          string
	ProductCode string
	Name        string
	Category    Category
	SellPrice   decimal.Decimal
	Unit        Unit
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductCodeExists = errors.New("product code already exists")
)

type ProductRepository interface {
	Create(ctx context.Context, newProduct Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetByCode(ctx context.Context, productCode string) (Product, error)
	List(ctx context.Context, activeOnly bool) ([]Product, error)
	Update(ctx context.Context, req UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateProductRequest struct {
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	Unit        string          `json:"unit"`
	Active      *bool           `json:"active,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductCode) {
		errs = append(errs, validator.ValidationError{Field: "product_code", Message: "is required"})
	} else if !validator.IsValidRecordCode(r.ProductCode) {
		errs = append(errs, validator.ValidationError{Field: "product_code", Message: "must be uppercase letters, digits or dashes"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryPackage), string(CategoryAddon)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Paket' or 'Tambahan'"})
	}
	if !validator.IsInSlice(r.Unit, []string{string(UnitPackage), string(UnitPerson), string(UnitFile), string(UnitPrint)}) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "must be one of 'Paket', 'Orang', 'File', 'Cetak'"})
	}
	if r.SellPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "sell_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name,omitempty"`
	Category  *string          `json:"category,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	Unit      *string          `json:"unit,omitempty"`
	Active    *bool            `json:"active,omitempty"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	Unit        string          `json:"unit"`
	Active      bool            `json:"active"`
}
