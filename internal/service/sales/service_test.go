package sales

import (
	"context"
	"testing"

	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalesRepo struct {
	transactions []sales.Transaction
}

func (f *fakeSalesRepo) Create(ctx context.Context, newTransaction sales.Transaction) (sales.Transaction, error) {
	f.transactions = append(f.transactions, newTransaction)
	return newTransaction, nil
}

func (f *fakeSalesRepo) GetByID(ctx context.Context, id string) (sales.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return sales.Transaction{}, sales.ErrTransactionNotFound
}

func (f *fakeSalesRepo) List(ctx context.Context, filter sales.Filter) ([]sales.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeSalesRepo) Update(ctx context.Context, req sales.UpdateTransactionRequest) error {
	for i, t := range f.transactions {
		if t.ID != req.ID {
			continue
		}
		if req.Qty != nil {
			f.transactions[i].Qty = *req.Qty
		}
		if req.UnitPrice != nil {
			f.transactions[i].UnitPrice = *req.UnitPrice
		}
		if req.Discount != nil {
			f.transactions[i].Discount = *req.Discount
		}
		if req.TotalBilled != nil {
			f.transactions[i].TotalBilled = *req.TotalBilled
		}
		return nil
	}
	return sales.ErrTransactionNotFound
}

func (f *fakeSalesRepo) Delete(ctx context.Context, id string) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return sales.ErrTransactionNotFound
}

type fakeClientRepo struct {
	clients []client.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	f.clients = append(f.clients, newClient)
	return newClient, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	return client.Client{}, client.ErrClientNotFound
}

func (f *fakeClientRepo) GetByCode(ctx context.Context, clientCode string) (client.Client, error) {
	for _, c := range f.clients {
		if c.ClientCode == clientCode {
			return c, nil
		}
	}
	return client.Client{}, client.ErrClientNotFound
}

func (f *fakeClientRepo) List(ctx context.Context) ([]client.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, req client.UpdateClientRequest) error {
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeProductRepo struct {
	products []product.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	f.products = append(f.products, newProduct)
	return newProduct, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (product.Product, error) {
	return product.Product{}, product.ErrProductNotFound
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, productCode string) (product.Product, error) {
	for _, p := range f.products {
		if p.ProductCode == productCode {
			return p, nil
		}
	}
	return product.Product{}, product.ErrProductNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, req product.UpdateProductRequest) error {
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestService() (SalesService, *fakeSalesRepo) {
	repo := &fakeSalesRepo{}
	clients := &fakeClientRepo{clients: []client.Client{
		{ID: "c1", ClientCode: "KLN001", Name: "Sari"},
	}}
	products := &fakeProductRepo{products: []product.Product{
		{
			ID:          "p1",
			ProductCode: "PRD001",
			Name:        "Paket Wisuda",
			Category:    product.CategoryPackage,
			SellPrice:   money("750000"),
			Unit:        product.UnitPackage,
			Active:      true,
		},
	}}
	return NewSalesService(repo, clients, products), repo
}

func validRequest() sales.CreateTransactionRequest {
	return sales.CreateTransactionRequest{
		Date:          "2025-01-10",
		InvoiceNumber: "INV-001",
		ClientCode:    "KLN001",
		ProductCode:   "PRD001",
		Qty:           2,
		UnitPrice:     money("750000"),
		Discount:      money("100000"),
	}
}

func TestCreateComputesTotalAndSnapshotsProduct(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// 2 * 750000 - 100000
	assert.True(t, created.TotalBilled.Equal(money("1400000")))
	assert.Equal(t, "Paket Wisuda", created.ProductName)
	assert.Equal(t, "Paket", created.ItemType)
	assert.Equal(t, "2025-01-10", created.Date)
	assert.NotEmpty(t, created.ID)
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.ClientCode = "KLN404"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, sales.ErrUnknownClient)

	req = validRequest()
	req.ProductCode = "PRD404"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, sales.ErrUnknownProduct)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Qty = 0
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validRequest()
	req.Date = "10/01/2025"
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func intPtr(v int) *int { return &v }

func TestUpdateRecomputesTotal(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), sales.UpdateTransactionRequest{
		ID:  created.ID,
		Qty: intPtr(3),
	})
	require.NoError(t, err)

	// Discount carries over: 3 * 750000 - 100000.
	assert.True(t, updated.TotalBilled.Equal(money("2150000")))

	newDiscount := money("0")
	updated, err = svc.Update(context.Background(), sales.UpdateTransactionRequest{
		ID:       created.ID,
		Discount: &newDiscount,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalBilled.Equal(money("2250000")))
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), sales.UpdateTransactionRequest{
		ID:  created.ID,
		Qty: intPtr(-1),
	})
	assert.Error(t, err)

	badDate := "not-a-date"
	_, err = svc.Update(context.Background(), sales.UpdateTransactionRequest{
		ID:   created.ID,
		Date: &badDate,
	})
	assert.Error(t, err)
}

func TestUpdateUnknownTransaction(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), sales.UpdateTransactionRequest{
		ID:  "missing",
		Qty: intPtr(2),
	})
	assert.ErrorIs(t, err, sales.ErrTransactionNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.transactions)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, sales.ErrTransactionNotFound)
}
