package payroll

import "context"

type PayrollRepository interface {
	// ReplaceForPeriod deletes every record for the period and inserts the
	// given set. The Postgres implementation does both inside one
	// transaction so a failed insert never leaves the period empty.
	ReplaceForPeriod(ctx context.Context, periodLabel string, records []Record) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	SetStatus(ctx context.Context, id string, status Status) error
}
