package workspace

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

// Descriptors returns the workspace tool descriptors
func Descriptors() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "ws_download_notebook",
			Description: "Download a notebook or directory export from the workspace",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "Absolute workspace path of the notebook or directory to export",
					},
					"format": map[string]any{
						"type":        "string",
						"description": "Export format",
						"enum":        ExportFormats,
					},
					"direct_download": map[string]any{
						"type":        "boolean",
						"description": "Return the exported file itself instead of a base64-encoded JSON envelope",
					},
				},
				Required: []string{"path"},
			},
		},
		{
			Name:        "ws_get_status",
			Description: "Get the status of a workspace object or directory",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "Absolute workspace path of the notebook or directory",
					},
				},
				Required: []string{"path"},
			},
		},
		{
			Name:        "ws_list_contents",
			Description: "List the contents of a workspace directory or object",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "Absolute workspace path of the notebook or directory",
					},
					"notebooks_modified_after": map[string]any{
						"type":        "integer",
						"description": "Only notebooks modified after this UTC timestamp in milliseconds",
					},
				},
				Required: []string{"path"},
			},
		},
	}
}

// Register wires the workspace tools into the registry
func Register(registry *tools.Registry, client *databricks.Client) error {
	return registry.Register(Descriptors, map[string]tools.Handler{
		"ws_download_notebook": downloadNotebookHandler(client),
		"ws_get_status":        getStatusHandler(client),
		"ws_list_contents":     listContentsHandler(client),
	})
}

func downloadNotebookHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		path, err := tools.ExtractString(args, "path")
		if err != nil {
			return tools.Error(err)
		}
		format := tools.OptionalString(args, "format", DefaultExportFormat)
		directDownload := tools.OptionalBool(args, "direct_download", false)

		notebook, err := DownloadNotebook(ctx, client, path, format, directDownload)
		if err != nil {
			return tools.Error(err)
		}
		if !notebook.HasContent {
			return tools.Result{
				Status:  tools.StatusSuccess,
				Message: "no content returned for " + path,
				Data:    map[string]any{"path": path},
			}
		}
		return tools.Success(map[string]any{
			"path":    notebook.Path,
			"content": string(notebook.Content),
			"size":    len(notebook.Content),
		})
	}
}

func getStatusHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		path, err := tools.ExtractString(args, "path")
		if err != nil {
			return tools.Error(err)
		}

		result, err := GetStatus(ctx, client, path)
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}

func listContentsHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		path, err := tools.ExtractString(args, "path")
		if err != nil {
			return tools.Error(err)
		}
		modifiedAfter, _, err := tools.OptionalInt64(args, "notebooks_modified_after")
		if err != nil {
			return tools.Error(err)
		}

		result, err := ListContents(ctx, client, path, modifiedAfter)
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}
