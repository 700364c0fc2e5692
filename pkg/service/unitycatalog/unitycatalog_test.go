package unitycatalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

type capture struct {
	requests int
	path     string
	query    url.Values
}

func newTestClient(t *testing.T, response string) (*databricks.Client, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.requests++
		cap.path = r.URL.Path
		cap.query = r.URL.Query()
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client := databricks.NewClient(zerolog.Nop(), databricks.WithCredentialProvider(func() (databricks.Credentials, error) {
		return databricks.Credentials{Host: srv.URL, Token: "test-token"}, nil
	}))
	return client, cap
}

func TestListCatalogs(t *testing.T) {
	client, cap := newTestClient(t, `{"catalogs":[{"name":"main"}]}`)

	result, err := ListCatalogs(context.Background(), client, ListCatalogsParams{
		IncludeBrowse: true,
		MaxResults:    10,
		PageToken:     "tok",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/2.1/unity-catalog/catalogs", cap.path)
	assert.Equal(t, "true", cap.query.Get("include_browse"))
	assert.Equal(t, "10", cap.query.Get("max_results"))
	assert.Equal(t, "tok", cap.query.Get("page_token"))
	assert.Contains(t, result, "catalogs")
}

func TestListTables(t *testing.T) {
	client, cap := newTestClient(t, `{"tables":[]}`)

	_, err := ListTables(context.Background(), client, ListTablesParams{
		CatalogName: "main",
		SchemaName:  "default",
		OmitColumns: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/2.1/unity-catalog/tables", cap.path)
	assert.Equal(t, "main", cap.query.Get("catalog_name"))
	assert.Equal(t, "default", cap.query.Get("schema_name"))
	assert.Equal(t, "true", cap.query.Get("omit_columns"))
	assert.Empty(t, cap.query.Get("omit_properties"))
}

func TestGetTableInfoValidatesName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"valid", "main.default.users", false},
		{"two parts", "default.users", true},
		{"four parts", "a.b.c.d", true},
		{"empty segment", "main..users", true},
		{"trailing dot", "main.default.", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, cap := newTestClient(t, `{"name":"users"}`)

			_, err := GetTableInfo(context.Background(), client, tt.table)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidParameter, errors.CodeOf(err))
				assert.Equal(t, 0, cap.requests)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/api/2.1/unity-catalog/tables/main.default.users", cap.path)
		})
	}
}

func TestHandlersRequireParameters(t *testing.T) {
	client, cap := newTestClient(t, `{}`)
	registry := tools.NewRegistry()
	require.NoError(t, Register(registry, client))

	tests := []struct {
		name    string
		tool    string
		args    map[string]any
		message string
	}{
		{
			name:    "uc_list_tables without catalog_name",
			tool:    "uc_list_tables",
			args:    map[string]any{"schema_name": "default"},
			message: "missing required parameter: catalog_name",
		},
		{
			name:    "uc_list_tables without schema_name",
			tool:    "uc_list_tables",
			args:    map[string]any{"catalog_name": "main"},
			message: "missing required parameter: schema_name",
		},
		{
			name:    "uc_get_table_info without full_table_name",
			tool:    "uc_get_table_info",
			args:    map[string]any{},
			message: "missing required parameter: full_table_name",
		},
		{
			name:    "uc_get_table_info with malformed name",
			tool:    "uc_get_table_info",
			args:    map[string]any{"full_table_name": "users"},
			message: "catalog.schema.table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := cap.requests
			result := registry.Dispatch(context.Background(), tt.tool, tt.args)
			assert.True(t, result.IsError())
			assert.Contains(t, result.Message, tt.message)
			assert.Equal(t, before, cap.requests)
		})
	}
}

func TestListCatalogsHandlerSuccess(t *testing.T) {
	client, _ := newTestClient(t, `{"catalogs":[]}`)
	registry := tools.NewRegistry()
	require.NoError(t, Register(registry, client))

	result := registry.Dispatch(context.Background(), "uc_list_catalogs", map[string]any{})
	assert.False(t, result.IsError())
}
