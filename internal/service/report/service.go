package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/report"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

type ReportService interface {
	ProfitPerInvoice(ctx context.Context) ([]report.ProfitInvoice, error)
	ProfitLoss(ctx context.Context, periodLabel string) (report.ProfitLoss, error)
	Dashboard(ctx context.Context) (report.DashboardSummary, error)
}

type reportServiceImpl struct {
	salesRepo       sales.TransactionRepository
	operationalRepo cost.OperationalCostRepository
	fixedRepo       cost.FixedCostRepository
	payrollRepo     payroll.PayrollRepository
}

func NewReportService(
	salesRepo sales.TransactionRepository,
	operationalRepo cost.OperationalCostRepository,
	fixedRepo cost.FixedCostRepository,
	payrollRepo payroll.PayrollRepository,
) ReportService {
	return &reportServiceImpl{
		salesRepo:       salesRepo,
		operationalRepo: operationalRepo,
		fixedRepo:       fixedRepo,
		payrollRepo:     payrollRepo,
	}
}

// buildProfitPerInvoice groups sales rows by invoice and subtracts the
// operational costs attributed to each invoice. Costs referencing an invoice
// with no sales rows are dropped: without revenue there is nothing to
// attribute them against.
func buildProfitPerInvoice(transactions []sales.Transaction, costs []cost.OperationalCost) []report.ProfitInvoice {
	type invoiceAgg struct {
		revenue  decimal.Decimal
		earliest int // index into transactions of the earliest-dated row
	}

	revenue := make(map[string]*invoiceAgg)
	for i, t := range transactions {
		agg, ok := revenue[t.InvoiceNumber]
		if !ok {
			revenue[t.InvoiceNumber] = &invoiceAgg{revenue: t.TotalBilled, earliest: i}
			continue
		}
		agg.revenue = agg.revenue.Add(t.TotalBilled)
		if t.Date.Before(transactions[agg.earliest].Date) {
			agg.earliest = i
		}
	}

	costTotals := make(map[string]decimal.Decimal)
	for _, c := range costs {
		if c.InvoiceRef == nil || *c.InvoiceRef == "" {
			continue
		}
		costTotals[*c.InvoiceRef] = costTotals[*c.InvoiceRef].Add(c.Amount)
	}

	results := make([]report.ProfitInvoice, 0, len(revenue))
	for invoice, agg := range revenue {
		totalCost := costTotals[invoice]
		results = append(results, report.ProfitInvoice{
			InvoiceNumber: invoice,
			Period:        period.FromDate(transactions[agg.earliest].Date),
			TotalRevenue:  agg.revenue,
			TotalCost:     totalCost,
			Profit:        agg.revenue.Sub(totalCost),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].Profit.Equal(results[j].Profit) {
			return results[i].Profit.GreaterThan(results[j].Profit)
		}
		return results[i].InvoiceNumber < results[j].InvoiceNumber
	})
	return results
}

func (s *reportServiceImpl) ProfitPerInvoice(ctx context.Context) ([]report.ProfitInvoice, error) {
	transactions, err := s.salesRepo.List(ctx, sales.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load sales transactions: %w", err)
	}
	costs, err := s.operationalRepo.List(ctx, cost.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load operational costs: %w", err)
	}
	return buildProfitPerInvoice(transactions, costs), nil
}

func sumBilled(transactions []sales.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.TotalBilled)
	}
	return total
}

func sumCosts(costs []cost.OperationalCost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c.Amount)
	}
	return total
}

func sumActiveFixed(costs []cost.FixedCost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c.Amount)
	}
	return total
}

func sumPayroll(records []payroll.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.TotalSalary)
	}
	return total
}

// ProfitLoss computes the statement for one month: revenue booked in the
// month, minus active fixed costs, operational costs dated in the month and
// the period's payroll.
func (s *reportServiceImpl) ProfitLoss(ctx context.Context, periodLabel string) (report.ProfitLoss, error) {
	start, end, err := period.DateRange(periodLabel)
	if err != nil {
		return report.ProfitLoss{}, err
	}

	transactions, err := s.salesRepo.List(ctx, sales.Filter{DateFrom: start, DateTo: end})
	if err != nil {
		return report.ProfitLoss{}, fmt.Errorf("failed to load sales transactions: %w", err)
	}
	operational, err := s.operationalRepo.List(ctx, cost.Filter{DateFrom: start, DateTo: end})
	if err != nil {
		return report.ProfitLoss{}, fmt.Errorf("failed to load operational costs: %w", err)
	}
	fixed, err := s.fixedRepo.List(ctx, true)
	if err != nil {
		return report.ProfitLoss{}, fmt.Errorf("failed to load fixed costs: %w", err)
	}
	payrollRecords, err := s.payrollRepo.List(ctx, payroll.Filter{Period: periodLabel})
	if err != nil {
		return report.ProfitLoss{}, fmt.Errorf("failed to load payroll records: %w", err)
	}

	revenue := sumBilled(transactions)
	fixedTotal := sumActiveFixed(fixed)
	operationalTotal := sumCosts(operational)
	payrollTotal := sumPayroll(payrollRecords)

	return report.ProfitLoss{
		Period:           periodLabel,
		Revenue:          revenue,
		FixedCosts:       fixedTotal,
		OperationalCosts: operationalTotal,
		PayrollTotal:     payrollTotal,
		NetProfit:        revenue.Sub(fixedTotal).Sub(operationalTotal).Sub(payrollTotal),
	}, nil
}

// countDistinctClients counts the unique client codes among the rows, so a
// client is counted once per month no matter how many invoices they paid.
func countDistinctClients(transactions []sales.Transaction) int {
	seen := make(map[string]struct{}, len(transactions))
	for _, t := range transactions {
		seen[t.ClientCode] = struct{}{}
	}
	return len(seen)
}

// Dashboard reports the current month, matching the owner landing page.
func (s *reportServiceImpl) Dashboard(ctx context.Context) (report.DashboardSummary, error) {
	return s.dashboardFor(ctx, time.Now())
}

func (s *reportServiceImpl) dashboardFor(ctx context.Context, now time.Time) (report.DashboardSummary, error) {
	periodLabel := period.FromDate(now)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)

	transactions, err := s.salesRepo.List(ctx, sales.Filter{DateFrom: start, DateTo: end})
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to load sales transactions: %w", err)
	}
	operational, err := s.operationalRepo.List(ctx, cost.Filter{DateFrom: start, DateTo: end})
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to load operational costs: %w", err)
	}
	fixed, err := s.fixedRepo.List(ctx, true)
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to load fixed costs: %w", err)
	}
	payrollRecords, err := s.payrollRepo.List(ctx, payroll.Filter{Period: periodLabel})
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to load payroll records: %w", err)
	}

	revenue := sumBilled(transactions)
	operationalTotal := sumCosts(operational)
	fixedTotal := sumActiveFixed(fixed)
	payrollTotal := sumPayroll(payrollRecords)

	clientCount := countDistinctClients(transactions)
	average := decimal.Zero
	if clientCount > 0 {
		average = revenue.DivRound(decimal.NewFromInt(int64(clientCount)), 2)
	}

	return report.DashboardSummary{
		Period:                  periodLabel,
		TotalRevenue:            revenue,
		TotalOperationalCosts:   operationalTotal,
		TotalFixedCosts:         fixedTotal,
		TotalPayroll:            payrollTotal,
		NetProfit:               revenue.Sub(operationalTotal).Sub(fixedTotal).Sub(payrollTotal),
		ClientCount:             clientCount,
		AverageRevenuePerClient: average,
	}, nil
}
