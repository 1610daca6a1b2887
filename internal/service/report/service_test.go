package report

import (
	"context"
	"testing"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
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
	var out []sales.Transaction
	for _, t := range f.transactions {
		if !filter.DateFrom.IsZero() && t.Date.Before(filter.DateFrom) {
			continue
		}
		if !filter.DateTo.IsZero() && t.Date.After(filter.DateTo) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeSalesRepo) Update(ctx context.Context, req sales.UpdateTransactionRequest) error {
	return nil
}

func (f *fakeSalesRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeOperationalRepo struct {
	costs []cost.OperationalCost
}

func (f *fakeOperationalRepo) Create(ctx context.Context, newCost cost.OperationalCost) (cost.OperationalCost, error) {
	f.costs = append(f.costs, newCost)
	return newCost, nil
}

func (f *fakeOperationalRepo) GetByID(ctx context.Context, id string) (cost.OperationalCost, error) {
	for _, c := range f.costs {
		if c.ID == id {
			return c, nil
		}
	}
	return cost.OperationalCost{}, cost.ErrOperationalCostNotFound
}

func (f *fakeOperationalRepo) List(ctx context.Context, filter cost.Filter) ([]cost.OperationalCost, error) {
	var out []cost.OperationalCost
	for _, c := range f.costs {
		if !filter.DateFrom.IsZero() && c.Date.Before(filter.DateFrom) {
			continue
		}
		if !filter.DateTo.IsZero() && c.Date.After(filter.DateTo) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeOperationalRepo) Update(ctx context.Context, req cost.UpdateOperationalCostRequest) error {
	return nil
}

func (f *fakeOperationalRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeFixedRepo struct {
	costs []cost.FixedCost
}

func (f *fakeFixedRepo) Create(ctx context.Context, newCost cost.FixedCost) (cost.FixedCost, error) {
	f.costs = append(f.costs, newCost)
	return newCost, nil
}

func (f *fakeFixedRepo) GetByID(ctx context.Context, id string) (cost.FixedCost, error) {
	for _, c := range f.costs {
		if c.ID == id {
			return c, nil
		}
	}
	return cost.FixedCost{}, cost.ErrFixedCostNotFound
}

func (f *fakeFixedRepo) List(ctx context.Context, activeOnly bool) ([]cost.FixedCost, error) {
	var out []cost.FixedCost
	for _, c := range f.costs {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeFixedRepo) Update(ctx context.Context, req cost.UpdateFixedCostRequest) error {
	return nil
}

func (f *fakeFixedRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakePayrollRepo struct {
	records []payroll.Record
}

func (f *fakePayrollRepo) ReplaceForPeriod(ctx context.Context, periodLabel string, records []payroll.Record) ([]payroll.Record, error) {
	return records, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		if filter.Period != "" && rec.Period != filter.Period {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakePayrollRepo) SetStatus(ctx context.Context, id string, status payroll.Status) error {
	return payroll.ErrRecordNotFound
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func strPtr(s string) *string { return &s }

func saleRow(invoice, date, billed string) sales.Transaction {
	return sales.Transaction{
		InvoiceNumber: invoice,
		Date:          day(date),
		TotalBilled:   money(billed),
	}
}

func costRow(date, amount string, ref *string) cost.OperationalCost {
	return cost.OperationalCost{
		Date:       day(date),
		Amount:     money(amount),
		InvoiceRef: ref,
	}
}

func TestBuildProfitPerInvoice(t *testing.T) {
	transactions := []sales.Transaction{
		saleRow("INV-001", "2025-01-20", "500000"),
		saleRow("INV-001", "2025-01-10", "1000000"),
		saleRow("INV-002", "2025-02-05", "800000"),
	}
	costs := []cost.OperationalCost{
		costRow("2025-01-12", "300000", strPtr("INV-001")),
		costRow("2025-01-15", "50000", nil),
		costRow("2025-01-18", "75000", strPtr("")),
		// Cost against an invoice with no sales rows: excluded entirely.
		costRow("2025-03-01", "120000", strPtr("INV-999")),
	}

	results := buildProfitPerInvoice(transactions, costs)
	require.Len(t, results, 2)

	// Highest profit first.
	assert.Equal(t, "INV-001", results[0].InvoiceNumber)
	assert.True(t, results[0].TotalRevenue.Equal(money("1500000")))
	assert.True(t, results[0].TotalCost.Equal(money("300000")))
	assert.True(t, results[0].Profit.Equal(money("1200000")))
	// Period comes from the earliest sales row of the invoice.
	assert.Equal(t, "Jan-2025", results[0].Period)

	assert.Equal(t, "INV-002", results[1].InvoiceNumber)
	assert.True(t, results[1].TotalCost.Equal(money("0")))
	assert.True(t, results[1].Profit.Equal(money("800000")))
	assert.Equal(t, "Feb-2025", results[1].Period)
}

func TestBuildProfitPerInvoiceTiesSortByInvoice(t *testing.T) {
	transactions := []sales.Transaction{
		saleRow("INV-B", "2025-01-10", "500000"),
		saleRow("INV-A", "2025-01-12", "500000"),
	}

	results := buildProfitPerInvoice(transactions, nil)
	require.Len(t, results, 2)
	assert.Equal(t, "INV-A", results[0].InvoiceNumber)
	assert.Equal(t, "INV-B", results[1].InvoiceNumber)
}

func TestBuildProfitPerInvoiceEmpty(t *testing.T) {
	results := buildProfitPerInvoice(nil, []cost.OperationalCost{
		costRow("2025-01-12", "300000", strPtr("INV-001")),
	})
	assert.Empty(t, results)
}

func clientSale(invoice, date, billed, clientCode string) sales.Transaction {
	t := saleRow(invoice, date, billed)
	t.ClientCode = clientCode
	return t
}

func newTestService() ReportService {
	salesRepo := &fakeSalesRepo{transactions: []sales.Transaction{
		clientSale("INV-001", "2025-01-10", "1200000", "KLN001"),
		clientSale("INV-002", "2025-01-20", "800000", "KLN002"),
		clientSale("INV-003", "2025-01-25", "500000", "KLN001"),
		clientSale("INV-004", "2025-02-03", "900000", "KLN003"),
	}}
	operationalRepo := &fakeOperationalRepo{costs: []cost.OperationalCost{
		costRow("2025-01-12", "250000", strPtr("INV-001")),
		costRow("2025-02-10", "100000", nil),
	}}
	fixedRepo := &fakeFixedRepo{costs: []cost.FixedCost{
		{ID: "f1", Name: "Sewa studio", Amount: money("1000000"), Active: true},
		{ID: "f2", Name: "Langganan lama", Amount: money("999999"), Active: false},
	}}
	payrollRepo := &fakePayrollRepo{records: []payroll.Record{
		{ID: "p1", Period: "Jan-2025", TotalSalary: money("400000")},
		{ID: "p2", Period: "Feb-2025", TotalSalary: money("300000")},
	}}
	return NewReportService(salesRepo, operationalRepo, fixedRepo, payrollRepo)
}

func TestProfitLoss(t *testing.T) {
	svc := newTestService()

	statement, err := svc.ProfitLoss(context.Background(), "Jan-2025")
	require.NoError(t, err)

	assert.Equal(t, "Jan-2025", statement.Period)
	assert.True(t, statement.Revenue.Equal(money("2500000")))
	// Inactive fixed costs stay out of the statement.
	assert.True(t, statement.FixedCosts.Equal(money("1000000")))
	assert.True(t, statement.OperationalCosts.Equal(money("250000")))
	assert.True(t, statement.PayrollTotal.Equal(money("400000")))
	// 2500000 - 1000000 - 250000 - 400000
	assert.True(t, statement.NetProfit.Equal(money("850000")))
}

func TestProfitLossRejectsBadPeriod(t *testing.T) {
	svc := newTestService()

	_, err := svc.ProfitLoss(context.Background(), "2025-01")
	assert.Error(t, err)
}

func TestDashboardScopedToCurrentMonth(t *testing.T) {
	svc := newTestService().(*reportServiceImpl)

	summary, err := svc.dashboardFor(context.Background(), day("2025-01-15"))
	require.NoError(t, err)

	assert.Equal(t, "Jan-2025", summary.Period)
	// The February transaction, cost and payroll row stay out.
	assert.True(t, summary.TotalRevenue.Equal(money("2500000")))
	assert.True(t, summary.TotalOperationalCosts.Equal(money("250000")))
	assert.True(t, summary.TotalFixedCosts.Equal(money("1000000")))
	assert.True(t, summary.TotalPayroll.Equal(money("400000")))
	assert.True(t, summary.NetProfit.Equal(money("850000")))
	// KLN001 bought twice in January but counts once.
	assert.Equal(t, 2, summary.ClientCount)
	assert.True(t, summary.AverageRevenuePerClient.Equal(money("1250000")))
}

func TestDashboardMonthWithoutSales(t *testing.T) {
	svc := newTestService().(*reportServiceImpl)

	summary, err := svc.dashboardFor(context.Background(), day("2025-03-15"))
	require.NoError(t, err)
	assert.Equal(t, "Mar-2025", summary.Period)
	assert.True(t, summary.TotalRevenue.Equal(decimal.Zero))
	assert.Equal(t, 0, summary.ClientCount)
	assert.True(t, summary.AverageRevenuePerClient.Equal(decimal.Zero))
}
