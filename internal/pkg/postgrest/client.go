// Package postgrest is a minimal client for PostgREST-style REST backends
// (Supabase and compatible services). It covers the handful of verbs and
// filter operators the repositories need, nothing more.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, params: url.Values{}}
}

// Query accumulates filters for a single request against one table.
type Query struct {
	client *Client
	table  string
	params url.Values
}

func (q *Query) Eq(column string, value interface{}) *Query {
	q.params.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

func (q *Query) Gte(column string, value interface{}) *Query {
	q.params.Add(column, fmt.Sprintf("gte.%v", value))
	return q
}

func (q *Query) Lte(column string, value interface{}) *Query {
	q.params.Add(column, fmt.Sprintf("lte.%v", value))
	return q
}

func (q *Query) NotNull(column string) *Query {
	q.params.Add(column, "not.is.null")
	return q
}

func (q *Query) Order(column string, ascending bool) *Query {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.params.Add("order", column+"."+dir)
	return q
}

// Select fetches matching rows into dest, which must be a pointer to a slice.
func (q *Query) Select(ctx context.Context, dest interface{}) error {
	return q.do(ctx, http.MethodGet, nil, dest)
}

// Insert posts one or more rows. When dest is non-nil the inserted rows are
// decoded back into it.
func (q *Query) Insert(ctx context.Context, body interface{}, dest interface{}) error {
	return q.do(ctx, http.MethodPost, body, dest)
}

// Update patches all rows matching the accumulated filters.
func (q *Query) Update(ctx context.Context, body interface{}, dest interface{}) error {
	return q.do(ctx, http.MethodPatch, body, dest)
}

// Delete removes all rows matching the accumulated filters. The deleted rows
// are decoded into dest when non-nil, which lets callers detect "not found".
func (q *Query) Delete(ctx context.Context, dest interface{}) error {
	return q.do(ctx, http.MethodDelete, nil, dest)
}

func (q *Query) do(ctx context.Context, method string, body interface{}, dest interface{}) error {
	endpoint := q.client.baseURL + "/" + q.table
	if encoded := q.params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if q.client.apiKey != "" {
		req.Header.Set("apikey", q.client.apiKey)
		req.Header.Set("Authorization", "Bearer "+q.client.apiKey)
	}
	if dest != nil && method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := q.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, q.table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{StatusCode: resp.StatusCode, Table: q.table, Detail: strings.TrimSpace(string(detail))}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s response: %w", q.table, err)
	}
	return nil
}

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Table      string
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("postgrest: %s returned %d: %s", e.Table, e.StatusCode, e.Detail)
}
