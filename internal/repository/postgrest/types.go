// Package postgrest implements the domain repositories against a
// PostgREST-style REST backend. Tables and columns match the Postgres
// schema, so the same deployment can serve either backend.
package postgrest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
)

// restDate is a bare calendar date on the wire ("2026-01-31"). PostgREST
// serializes date columns without a time component, which time.Time cannot
// decode directly.
type restDate struct {
	time.Time
}

const restDateLayout = "2006-01-02"

func (d restDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(restDateLayout) + `"`), nil
}

func (d *restDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(restDateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// restTime is a timestamp column. Supabase returns microsecond timestamps
// with or without a zone offset depending on the column type.
type restTime struct {
	time.Time
}

var restTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t restTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

func (t *restTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range restTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("parse timestamp %q: %w", s, lastErr)
}

// patchBase starts an update payload. Postgres updates bump updated_at via
// NOW(); over REST the timestamp is sent explicitly.
func patchBase() map[string]interface{} {
	return map[string]interface{}{"updated_at": restTime{time.Now().UTC()}}
}

// isConflict reports whether err is the backend's unique-violation response.
func isConflict(err error) bool {
	var restErr *postgrest.Error
	return errors.As(err, &restErr) && restErr.StatusCode == http.StatusConflict
}
