package unitycatalog

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

// Descriptors returns the Unity Catalog tool descriptors
func Descriptors() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "uc_list_catalogs",
			Description: "List catalogs in the Unity Catalog metastore",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"include_browse": map[string]any{
						"type":        "boolean",
						"description": "Include catalogs with browse-only access",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Maximum number of catalogs to return",
					},
					"page_token": map[string]any{
						"type":        "string",
						"description": "Pagination token for the next page",
					},
				},
			},
		},
		{
			Name:        "uc_list_tables",
			Description: "List tables under a Unity Catalog catalog and schema",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"catalog_name": map[string]any{
						"type":        "string",
						"description": "Name of the parent catalog",
					},
					"schema_name": map[string]any{
						"type":        "string",
						"description": "Name of the parent schema",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Maximum number of tables to return",
					},
					"page_token": map[string]any{
						"type":        "string",
						"description": "Pagination token for the next page",
					},
					"omit_columns": map[string]any{
						"type":        "boolean",
						"description": "Omit table columns from the response",
					},
					"omit_properties": map[string]any{
						"type":        "boolean",
						"description": "Omit table properties from the response",
					},
					"omit_username": map[string]any{
						"type":        "boolean",
						"description": "Omit owner and creator usernames from the response",
					},
					"include_browse": map[string]any{
						"type":        "boolean",
						"description": "Include tables with browse-only access",
					},
					"include_manifest_capabilities": map[string]any{
						"type":        "boolean",
						"description": "Include manifest capabilities in the response",
					},
				},
				Required: []string{"catalog_name", "schema_name"},
			},
		},
		{
			Name:        "uc_get_table_info",
			Description: "Get detailed metadata for a Unity Catalog table",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"full_table_name": map[string]any{
						"type":        "string",
						"description": "Full table name in catalog.schema.table format",
					},
				},
				Required: []string{"full_table_name"},
			},
		},
	}
}

// Register wires the Unity Catalog tools into the registry
func Register(registry *tools.Registry, client *databricks.Client) error {
	return registry.Register(Descriptors, map[string]tools.Handler{
		"uc_list_catalogs":  listCatalogsHandler(client),
		"uc_list_tables":    listTablesHandler(client),
		"uc_get_table_info": getTableInfoHandler(client),
	})
}

func listCatalogsHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		maxResults, _, err := tools.OptionalInt(args, "max_results")
		if err != nil {
			return tools.Error(err)
		}

		result, err := ListCatalogs(ctx, client, ListCatalogsParams{
			IncludeBrowse: tools.OptionalBool(args, "include_browse", false),
			MaxResults:    maxResults,
			PageToken:     tools.OptionalString(args, "page_token", ""),
		})
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}

func listTablesHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		catalogName, err := tools.ExtractString(args, "catalog_name")
		if err != nil {
			return tools.Error(err)
		}
		schemaName, err := tools.ExtractString(args, "schema_name")
		if err != nil {
			return tools.Error(err)
		}
		maxResults, _, err := tools.OptionalInt(args, "max_results")
		if err != nil {
			return tools.Error(err)
		}

		result, err := ListTables(ctx, client, ListTablesParams{
			CatalogName:                 catalogName,
			SchemaName:                  schemaName,
			MaxResults:                  maxResults,
			PageToken:                   tools.OptionalString(args, "page_token", ""),
			OmitColumns:                 tools.OptionalBool(args, "omit_columns", false),
			OmitProperties:              tools.OptionalBool(args, "omit_properties", false),
			OmitUsername:                tools.OptionalBool(args, "omit_username", false),
			IncludeBrowse:               tools.OptionalBool(args, "include_browse", false),
			IncludeManifestCapabilities: tools.OptionalBool(args, "include_manifest_capabilities", false),
		})
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}

func getTableInfoHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		fullTableName, err := tools.ExtractString(args, "full_table_name")
		if err != nil {
			return tools.Error(err)
		}

		result, err := GetTableInfo(ctx, client, fullTableName)
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}
