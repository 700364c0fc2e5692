package bootstrap

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/config"
)

func newBootstrapper(cfg *config.Config) *Bootstrapper {
	client := databricks.NewClient(zerolog.Nop())
	return New(zerolog.Nop(), cfg, client)
}

func TestBuildRegistryRegistersAllServices(t *testing.T) {
	registry, err := newBootstrapper(config.DefaultConfig()).BuildRegistry()
	require.NoError(t, err)

	assert.Equal(t, 10, registry.Len())

	names := make(map[string]bool)
	for _, tool := range registry.ListAll() {
		names[tool.Name] = true
	}
	expected := []string{
		"sql_execute_statement",
		"jobs_list", "jobs_get", "jobs_list_runs",
		"uc_list_catalogs", "uc_list_tables", "uc_get_table_info",
		"ws_download_notebook", "ws_get_status", "ws_list_contents",
	}
	for _, name := range expected {
		assert.True(t, names[name], "tool %s not registered", name)
	}
	assert.Len(t, names, len(expected))
}

func TestBuildRegistrySkipsDisabledServices(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisableServices([]string{config.ServiceSQL, config.ServiceWorkspace})

	registry, err := newBootstrapper(cfg).BuildRegistry()
	require.NoError(t, err)

	assert.Equal(t, 6, registry.Len())
	for _, tool := range registry.ListAll() {
		assert.NotEqual(t, "sql_execute_statement", tool.Name)
		assert.NotEqual(t, "ws_download_notebook", tool.Name)
	}
}

func TestCreateMCPServer(t *testing.T) {
	bootstrapper := newBootstrapper(config.DefaultConfig())
	registry, err := bootstrapper.BuildRegistry()
	require.NoError(t, err)

	mcpServer := bootstrapper.CreateMCPServer(registry)
	assert.NotNil(t, mcpServer)
}
