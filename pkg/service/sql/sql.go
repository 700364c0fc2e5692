// Package sql exposes the Databricks SQL Statement Execution API as MCP
// tools.
package sql

import (
	"context"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

const statementsPath = "/api/2.0/sql/statements/"

// Defaults mirroring the SQL Statement Execution API
const (
	DefaultWaitTimeout   = "10s"
	DefaultOnWaitTimeout = "CONTINUE"
	DefaultDisposition   = "INLINE"
	DefaultFormat        = "JSON_ARRAY"
)

// Allowed enumeration values
var (
	Dispositions   = []string{"INLINE", "EXTERNAL_LINKS"}
	Formats        = []string{"JSON_ARRAY", "ARROW_STREAM", "CSV"}
	OnWaitTimeouts = []string{"CONTINUE", "CANCEL"}
)

// ExecuteParams describes one statement execution request
type ExecuteParams struct {
	Statement     string
	WarehouseID   string
	Catalog       string
	Schema        string
	Disposition   string
	Format        string
	WaitTimeout   string
	OnWaitTimeout string
	Parameters    []any
	ByteLimit     int64
	RowLimit      int64
}

// ExecuteStatement executes a SQL statement on a warehouse. Enumerated
// fields are validated locally before any network call.
func ExecuteStatement(ctx context.Context, client *databricks.Client, p ExecuteParams) (map[string]any, error) {
	if p.Disposition == "" {
		p.Disposition = DefaultDisposition
	}
	if p.Format == "" {
		p.Format = DefaultFormat
	}
	if p.WaitTimeout == "" {
		p.WaitTimeout = DefaultWaitTimeout
	}
	if p.OnWaitTimeout == "" {
		p.OnWaitTimeout = DefaultOnWaitTimeout
	}

	if err := tools.OneOf("disposition", p.Disposition, Dispositions); err != nil {
		return nil, err
	}
	if err := tools.OneOf("format", p.Format, Formats); err != nil {
		return nil, err
	}
	if err := tools.OneOf("on_wait_timeout", p.OnWaitTimeout, OnWaitTimeouts); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"statement":       p.Statement,
		"warehouse_id":    p.WarehouseID,
		"disposition":     p.Disposition,
		"format":          p.Format,
		"wait_timeout":    p.WaitTimeout,
		"on_wait_timeout": p.OnWaitTimeout,
	}
	if p.Catalog != "" {
		payload["catalog"] = p.Catalog
	}
	if p.Schema != "" {
		payload["schema"] = p.Schema
	}
	if len(p.Parameters) > 0 {
		payload["parameters"] = p.Parameters
	}
	if p.ByteLimit > 0 {
		payload["byte_limit"] = p.ByteLimit
	}
	if p.RowLimit > 0 {
		payload["row_limit"] = p.RowLimit
	}

	return client.PostJSON(ctx, statementsPath, payload)
}
