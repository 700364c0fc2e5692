package sql

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

// Descriptors returns the SQL tool descriptors
func Descriptors() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "sql_execute_statement",
			Description: "Execute a SQL statement on a Databricks SQL warehouse and return the result",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"statement": map[string]any{
						"type":        "string",
						"description": "The SQL statement to execute",
					},
					"warehouse_id": map[string]any{
						"type":        "string",
						"description": "ID of the SQL warehouse to run the statement on",
					},
					"catalog": map[string]any{
						"type":        "string",
						"description": "Default catalog for execution",
					},
					"schema": map[string]any{
						"type":        "string",
						"description": "Default schema for execution",
					},
					"disposition": map[string]any{
						"type":        "string",
						"description": "Result delivery mode",
						"enum":        Dispositions,
					},
					"format": map[string]any{
						"type":        "string",
						"description": "Result encoding",
						"enum":        Formats,
					},
					"wait_timeout": map[string]any{
						"type":        "string",
						"description": "How long to wait for the statement result, e.g. '10s'",
					},
					"on_wait_timeout": map[string]any{
						"type":        "string",
						"description": "Whether execution continues or is cancelled when the wait timeout elapses",
						"enum":        OnWaitTimeouts,
					},
					"parameters": map[string]any{
						"type":        "array",
						"description": "Parameters for parameterized SQL",
						"items":       map[string]any{"type": "object"},
					},
					"byte_limit": map[string]any{
						"type":        "integer",
						"description": "Byte limit for the result size",
					},
					"row_limit": map[string]any{
						"type":        "integer",
						"description": "Row limit for the result set",
					},
				},
				Required: []string{"statement", "warehouse_id"},
			},
		},
	}
}

// Register wires the SQL tools into the registry
func Register(registry *tools.Registry, client *databricks.Client) error {
	return registry.Register(Descriptors, map[string]tools.Handler{
		"sql_execute_statement": executeStatementHandler(client),
	})
}

func executeStatementHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		statement, err := tools.ExtractString(args, "statement")
		if err != nil {
			return tools.Error(err)
		}
		warehouseID, err := tools.ExtractString(args, "warehouse_id")
		if err != nil {
			return tools.Error(err)
		}

		byteLimit, _, err := tools.OptionalInt64(args, "byte_limit")
		if err != nil {
			return tools.Error(err)
		}
		rowLimit, _, err := tools.OptionalInt64(args, "row_limit")
		if err != nil {
			return tools.Error(err)
		}

		var parameters []any
		if raw, ok := args["parameters"].([]any); ok {
			parameters = raw
		}

		result, err := ExecuteStatement(ctx, client, ExecuteParams{
			Statement:     statement,
			WarehouseID:   warehouseID,
			Catalog:       tools.OptionalString(args, "catalog", ""),
			Schema:        tools.OptionalString(args, "schema", ""),
			Disposition:   tools.OptionalString(args, "disposition", DefaultDisposition),
			Format:        tools.OptionalString(args, "format", DefaultFormat),
			WaitTimeout:   tools.OptionalString(args, "wait_timeout", DefaultWaitTimeout),
			OnWaitTimeout: tools.OptionalString(args, "on_wait_timeout", DefaultOnWaitTimeout),
			Parameters:    parameters,
			ByteLimit:     byteLimit,
			RowLimit:      rowLimit,
		})
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}
