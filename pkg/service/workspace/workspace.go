// Package workspace exposes Databricks workspace object operations as MCP
// tools.
package workspace

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

const (
	exportPath    = "/api/2.0/workspace/export"
	getStatusPath = "/api/2.0/workspace/get-status"
	listPath      = "/api/2.0/workspace/list"
)

// DefaultExportFormat is applied when the caller does not pick a format
const DefaultExportFormat = "SOURCE"

// ExportFormats are the formats accepted by the workspace export endpoint
var ExportFormats = []string{"SOURCE", "HTML", "JUPYTER", "DBC", "R_MARKDOWN", "AUTO"}

// Notebook is the outcome of a notebook download. HasContent is false when
// the export response carried no content field.
type Notebook struct {
	Path       string
	Content    []byte
	HasContent bool
}

// DownloadNotebook exports a notebook or directory. With directDownload the
// response body is the exported file itself; otherwise the JSON response
// carries the content base64-encoded.
func DownloadNotebook(ctx context.Context, client *databricks.Client, path, format string, directDownload bool) (Notebook, error) {
	if format == "" {
		format = DefaultExportFormat
	}
	if err := tools.OneOf("format", format, ExportFormats); err != nil {
		return Notebook{}, err
	}

	query := url.Values{}
	query.Set("path", path)
	query.Set("format", format)
	query.Set("direct_download", strconv.FormatBool(directDownload))

	raw, err := client.Get(ctx, exportPath, query)
	if err != nil {
		return Notebook{}, err
	}

	if directDownload {
		return Notebook{Path: path, Content: raw, HasContent: true}, nil
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Notebook{}, errors.New(errors.CodeUpstreamAPIError, "workspace",
			"export response is not valid JSON", err)
	}
	if payload.Content == "" {
		return Notebook{Path: path, HasContent: false}, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(payload.Content)
	if err != nil {
		return Notebook{}, errors.New(errors.CodeUpstreamAPIError, "workspace",
			"export content is not valid base64", err)
	}
	return Notebook{Path: path, Content: decoded, HasContent: true}, nil
}

// GetStatus fetches the status of a workspace object or directory
func GetStatus(ctx context.Context, client *databricks.Client, path string) (map[string]any, error) {
	query := url.Values{}
	query.Set("path", path)
	return client.GetJSON(ctx, getStatusPath, query)
}

// ListContents lists the contents of a workspace directory or object.
// notebooksModifiedAfter filters to notebooks modified after the given UTC
// timestamp in milliseconds; zero disables the filter.
func ListContents(ctx context.Context, client *databricks.Client, path string, notebooksModifiedAfter int64) (map[string]any, error) {
	query := url.Values{}
	query.Set("path", path)
	if notebooksModifiedAfter > 0 {
		query.Set("notebooks_modified_after", strconv.FormatInt(notebooksModifiedAfter, 10))
	}
	return client.GetJSON(ctx, listPath, query)
}
