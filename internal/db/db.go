// Package db wraps the PostgREST client used by the diagnostics endpoint.
// The service keeps no state in the database; this exists only to answer
// "can the backend reach its Supabase project" on a best-effort basis.
package db

import (
	"fmt"

	postgrest "github.com/supabase-community/postgrest-go"
)

// Client is a thin handle over a PostgREST connection.
type Client struct {
	pg    *postgrest.Client
	table string
}

// New builds a client against the project's REST endpoint. The service key
// doubles as the apikey header and the bearer token.
func New(supabaseURL, serviceKey, table string) (*Client, error) {
	pg := postgrest.NewClient(supabaseURL+"/rest/v1", "", map[string]string{
		"apikey":        serviceKey,
		"Authorization": fmt.Sprintf("Bearer %s", serviceKey),
	})
	if pg.ClientError != nil {
		return nil, fmt.Errorf("failed to initialize PostgREST client: %w", pg.ClientError)
	}
	return &Client{pg: pg, table: table}, nil
}

// Table returns the table the probe counts against.
func (c *Client) Table() string {
	return c.table
}

// Probe runs a head-only exact count against the probe table and returns
// the row count. Any error means the project is unreachable or the table
// is missing; callers report it, they do not fail on it.
func (c *Client) Probe() (int64, error) {
	_, count, err := c.pg.From(c.table).Select("*", "exact", true).Execute()
	if err != nil {
		return 0, fmt.Errorf("probe query against %s failed: %w", c.table, err)
	}
	return count, nil
}
