package sql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	body     map[string]any
}

func newTestClient(t *testing.T, status int, response string) (*databricks.Client, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.requests++
		cap.path = r.URL.Path
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&cap.body)
		}
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client := databricks.NewClient(zerolog.Nop(), databricks.WithCredentialProvider(func() (databricks.Credentials, error) {
		return databricks.Credentials{Host: srv.URL, Token: "test-token"}, nil
	}))
	return client, cap
}

func TestExecuteStatementAppliesDefaults(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{"status":{"state":"SUCCEEDED"}}`)

	_, err := ExecuteStatement(context.Background(), client, ExecuteParams{
		Statement:   "SELECT 1",
		WarehouseID: "wh-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/2.0/sql/statements/", cap.path)
	assert.Equal(t, "SELECT 1", cap.body["statement"])
	assert.Equal(t, "wh-1", cap.body["warehouse_id"])
	assert.Equal(t, "INLINE", cap.body["disposition"])
	assert.Equal(t, "JSON_ARRAY", cap.body["format"])
	assert.Equal(t, "10s", cap.body["wait_timeout"])
	assert.Equal(t, "CONTINUE", cap.body["on_wait_timeout"])
	assert.NotContains(t, cap.body, "catalog")
	assert.NotContains(t, cap.body, "byte_limit")
}

func TestExecuteStatementForwardsOptionalFields(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)

	_, err := ExecuteStatement(context.Background(), client, ExecuteParams{
		Statement:   "SELECT * FROM t WHERE id = :id",
		WarehouseID: "wh-1",
		Catalog:     "main",
		Schema:      "default",
		Parameters:  []any{map[string]any{"name": "id", "value": "7"}},
		ByteLimit:   1024,
		RowLimit:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, "main", cap.body["catalog"])
	assert.Equal(t, "default", cap.body["schema"])
	assert.Equal(t, float64(1024), cap.body["byte_limit"])
	assert.Equal(t, float64(100), cap.body["row_limit"])
	require.Len(t, cap.body["parameters"], 1)
}

func TestExecuteStatementValidatesEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExecuteParams)
	}{
		{"bad disposition", func(p *ExecuteParams) { p.Disposition = "SIDEWAYS" }},
		{"bad format", func(p *ExecuteParams) { p.Format = "XML" }},
		{"bad on_wait_timeout", func(p *ExecuteParams) { p.OnWaitTimeout = "PANIC" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, cap := newTestClient(t, http.StatusOK, `{}`)

			params := ExecuteParams{Statement: "SELECT 1", WarehouseID: "wh-1"}
			tt.mutate(&params)

			_, err := ExecuteStatement(context.Background(), client, params)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidParameter, errors.CodeOf(err))
			assert.Equal(t, 0, cap.requests)
		})
	}
}

func TestExecuteStatementSurfacesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadRequest, `{"error_code":"INVALID_PARAMETER_VALUE","message":"warehouse not found"}`)

	_, err := ExecuteStatement(context.Background(), client, ExecuteParams{
		Statement:   "SELECT 1",
		WarehouseID: "missing",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUpstreamAPIError, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "warehouse not found")
}

func TestExecuteStatementHandler(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{"status":{"state":"SUCCEEDED"}}`)
	registry := tools.NewRegistry()
	require.NoError(t, Register(registry, client))

	tests := []struct {
		name    string
		args    map[string]any
		isError bool
		message string
	}{
		{
			name: "success",
			args: map[string]any{"statement": "SELECT 1", "warehouse_id": "wh-1"},
		},
		{
			name:    "missing statement",
			args:    map[string]any{"warehouse_id": "wh-1"},
			isError: true,
			message: "missing required parameter: statement",
		},
		{
			name:    "missing warehouse_id",
			args:    map[string]any{"statement": "SELECT 1"},
			isError: true,
			message: "missing required parameter: warehouse_id",
		},
		{
			name:    "invalid disposition",
			args:    map[string]any{"statement": "SELECT 1", "warehouse_id": "wh-1", "disposition": "SIDEWAYS"},
			isError: true,
			message: "disposition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := cap.requests
			result := registry.Dispatch(context.Background(), "sql_execute_statement", tt.args)
			assert.Equal(t, tt.isError, result.IsError())
			if tt.isError {
				assert.Contains(t, result.Message, tt.message)
				assert.Equal(t, before, cap.requests)
			} else {
				assert.Equal(t, before+1, cap.requests)
			}
		})
	}
}
