// Package unitycatalog exposes Unity Catalog metastore operations as MCP
// tools.
package unitycatalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
)

const (
	catalogsPath = "/api/2.1/unity-catalog/catalogs"
	tablesPath   = "/api/2.1/unity-catalog/tables"
)

// ListCatalogsParams filters a catalog listing request
type ListCatalogsParams struct {
	IncludeBrowse bool
	MaxResults    int
	PageToken     string
}

// ListCatalogs lists catalogs in the metastore
func ListCatalogs(ctx context.Context, client *databricks.Client, p ListCatalogsParams) (map[string]any, error) {
	query := url.Values{}
	if p.IncludeBrowse {
		query.Set("include_browse", "true")
	}
	if p.MaxResults > 0 {
		query.Set("max_results", strconv.Itoa(p.MaxResults))
	}
	if p.PageToken != "" {
		query.Set("page_token", p.PageToken)
	}
	return client.GetJSON(ctx, catalogsPath, query)
}

// ListTablesParams filters a table listing request
type ListTablesParams struct {
	CatalogName                 string
	SchemaName                  string
	MaxResults                  int
	PageToken                   string
	OmitColumns                 bool
	OmitProperties              bool
	OmitUsername                bool
	IncludeBrowse               bool
	IncludeManifestCapabilities bool
}

// ListTables lists tables under a catalog and schema
func ListTables(ctx context.Context, client *databricks.Client, p ListTablesParams) (map[string]any, error) {
	query := url.Values{}
	query.Set("catalog_name", p.CatalogName)
	query.Set("schema_name", p.SchemaName)
	if p.MaxResults > 0 {
		query.Set("max_results", strconv.Itoa(p.MaxResults))
	}
	if p.PageToken != "" {
		query.Set("page_token", p.PageToken)
	}
	if p.OmitColumns {
		query.Set("omit_columns", "true")
	}
	if p.OmitProperties {
		query.Set("omit_properties", "true")
	}
	if p.OmitUsername {
		query.Set("omit_username", "true")
	}
	if p.IncludeBrowse {
		query.Set("include_browse", "true")
	}
	if p.IncludeManifestCapabilities {
		query.Set("include_manifest_capabilities", "true")
	}
	return client.GetJSON(ctx, tablesPath, query)
}

// GetTableInfo fetches metadata for a table addressed by its full
// three-part name, catalog.schema.table.
func GetTableInfo(ctx context.Context, client *databricks.Client, fullTableName string) (map[string]any, error) {
	if err := validateFullTableName(fullTableName); err != nil {
		return nil, err
	}
	path := tablesPath + "/" + url.PathEscape(fullTableName)
	return client.GetJSON(ctx, path, nil)
}

func validateFullTableName(name string) error {
	parts := strings.Split(name, ".")
	if len(parts) != 3 {
		return errors.New(errors.CodeInvalidParameter, "unitycatalog",
			fmt.Sprintf("full_table_name must use the catalog.schema.table format, got %q", name), nil)
	}
	for _, part := range parts {
		if part == "" {
			return errors.New(errors.CodeInvalidParameter, "unitycatalog",
				fmt.Sprintf("full_table_name has an empty segment: %q", name), nil)
		}
	}
	return nil
}
