package postgresql

import (
	"context"
	"io"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRows yields a number of zero-valued rows and then reports a stream
// error, the way pgx surfaces a connection lost mid result set.
type brokenRows struct {
	remaining int
	err       error
}

func (r *brokenRows) Next() bool {
	if r.remaining > 0 {
		r.remaining--
		return true
	}
	return false
}

func (r *brokenRows) Err() error                                   { return r.err }
func (r *brokenRows) Scan(dest ...any) error                       { return nil }
func (r *brokenRows) Close()                                       {}
func (r *brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *brokenRows) Values() ([]any, error)                       { return nil, nil }
func (r *brokenRows) RawValues() [][]byte                          { return nil }
func (r *brokenRows) Conn() *pgx.Conn                              { return nil }

// brokenTx satisfies pgx.Tx so it can be carried by WithTx; only Query is
// expected to be reached.
type brokenTx struct {
	rows *brokenRows
}

func (t *brokenTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *brokenTx) Commit(ctx context.Context) error          { return nil }
func (t *brokenTx) Rollback(ctx context.Context) error        { return nil }
func (t *brokenTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *brokenTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *brokenTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *brokenTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *brokenTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *brokenTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.rows, nil
}
func (t *brokenTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return t.rows }
func (t *brokenTx) Conn() *pgx.Conn                                               { return nil }

func brokenStreamContext(rowsBeforeFailure int) context.Context {
	return WithTx(context.Background(), &brokenTx{
		rows: &brokenRows{remaining: rowsBeforeFailure, err: io.ErrUnexpectedEOF},
	})
}

func TestTaskLogListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(1)

	logs, err := NewTaskLogRepository(nil).List(ctx, tasklog.Filter{Period: "Jan-2025"})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, logs)
}

func TestEmployeeListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(2)

	employees, err := NewEmployeeRepository(nil).List(ctx, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, employees)
}

func TestSalesListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(0)

	transactions, err := NewSalesRepository(nil).List(ctx, sales.Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, transactions)
}

func TestPayrollListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(1)

	records, err := NewPayrollRepository(nil).List(ctx, payroll.Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, records)
}

func TestFixedCostListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(0)

	costs, err := NewFixedCostRepository(nil).List(ctx, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, costs)
}

func TestOperationalCostListFailsOnBrokenStream(t *testing.T) {
	ctx := brokenStreamContext(1)

	costs, err := NewOperationalCostRepository(nil).List(ctx, cost.Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, costs)
}
