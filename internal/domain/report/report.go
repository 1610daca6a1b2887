// Package report holds the derived, read-time views: none of these are
// persisted, they are recomputed from sales, cost and payroll rows on every
// request.
package report

import "github.com/shopspring/decimal"

// ProfitInvoice attributes operational costs to the invoice that generated
// the corresponding revenue. Period is derived from the invoice's earliest
// transaction date.
type ProfitInvoice struct {
	InvoiceNumber string          `json:"invoice_number"`
	Period        string          `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Profit        decimal.Decimal `json:"profit"`
}

// ProfitLoss is the monthly profit & loss statement for one period label.
type ProfitLoss struct {
	Period           string          `json:"period"`
	Revenue          decimal.Decimal `json:"revenue"`
	FixedCosts       decimal.Decimal `json:"fixed_costs"`
	OperationalCosts decimal.Decimal `json:"operational_costs"`
	PayrollTotal     decimal.Decimal `json:"payroll_total"`
	NetProfit        decimal.Decimal `json:"net_profit"`
}

// DashboardSummary is the owner dashboard for the current month: revenue,
// operational costs and transacting clients are scoped to the month, payroll
// to the month's period label. Fixed costs are whatever is active now.
type DashboardSummary struct {
	Period                  string          `json:"period"`
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	TotalOperationalCosts   decimal.Decimal `json:"total_operational_costs"`
	TotalFixedCosts         decimal.Decimal `json:"total_fixed_costs"`
	TotalPayroll            decimal.Decimal `json:"total_payroll"`
	NetProfit               decimal.Decimal `json:"net_profit"`
	ClientCount             int             `json:"client_count"`
	AverageRevenuePerClient decimal.Decimal `json:"average_revenue_per_client"`
}
