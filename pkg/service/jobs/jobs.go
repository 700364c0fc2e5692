// Package jobs exposes the Databricks Jobs API as MCP tools.
package jobs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

const (
	listPath     = "/api/2.2/jobs/list"
	getPath      = "/api/2.1/jobs/get"
	listRunsPath = "/api/2.1/jobs/runs/list"
)

// Limit bounds enforced before any network call
const (
	DefaultLimit = 20
	MaxListLimit = 100
	MaxRunsLimit = 1000
)

// RunTypes are the run type filters accepted by the runs/list endpoint
var RunTypes = []string{"JOB_RUN", "WORKFLOW_RUN", "SUBMIT_RUN"}

// ListParams filters a job listing request. LimitSet distinguishes an
// explicit limit from the default.
type ListParams struct {
	Limit       int
	LimitSet    bool
	ExpandTasks bool
	Name        string
	PageToken   string
}

// List lists jobs in the workspace
func List(ctx context.Context, client *databricks.Client, p ListParams) (map[string]any, error) {
	limit := DefaultLimit
	if p.LimitSet {
		limit = p.Limit
	}
	if limit < 1 || limit > MaxListLimit {
		return nil, errors.New(errors.CodeInvalidParameter, "jobs",
			fmt.Sprintf("limit must be between 1 and %d, got %d", MaxListLimit, limit), nil)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if p.ExpandTasks {
		query.Set("expand_tasks", "true")
	}
	if p.Name != "" {
		query.Set("name", p.Name)
	}
	if p.PageToken != "" {
		query.Set("page_token", p.PageToken)
	}

	return client.GetJSON(ctx, listPath, query)
}

// Get fetches detailed information about one job
func Get(ctx context.Context, client *databricks.Client, jobID int64) (map[string]any, error) {
	query := url.Values{}
	query.Set("job_id", strconv.FormatInt(jobID, 10))
	return client.GetJSON(ctx, getPath, query)
}

// ListRunsParams filters a run listing request
type ListRunsParams struct {
	JobID         int64
	JobIDSet      bool
	ActiveOnly    bool
	CompletedOnly bool
	Limit         int
	LimitSet      bool
	PageToken     string
	RunType       string
	StartTimeFrom int64
	StartTimeTo   int64
}

// ListRuns lists job runs in the workspace
func ListRuns(ctx context.Context, client *databricks.Client, p ListRunsParams) (map[string]any, error) {
	limit := DefaultLimit
	if p.LimitSet {
		limit = p.Limit
	}
	if limit < 1 || limit > MaxRunsLimit {
		return nil, errors.New(errors.CodeInvalidParameter, "jobs",
			fmt.Sprintf("limit must be between 1 and %d, got %d", MaxRunsLimit, limit), nil)
	}
	if p.RunType != "" {
		if err := tools.OneOf("run_type", p.RunType, RunTypes); err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if p.JobIDSet {
		query.Set("job_id", strconv.FormatInt(p.JobID, 10))
	}
	if p.ActiveOnly {
		query.Set("active_only", "true")
	}
	if p.CompletedOnly {
		query.Set("completed_only", "true")
	}
	if p.PageToken != "" {
		query.Set("page_token", p.PageToken)
	}
	if p.RunType != "" {
		query.Set("run_type", p.RunType)
	}
	if p.StartTimeFrom > 0 {
		query.Set("start_time_from", strconv.FormatInt(p.StartTimeFrom, 10))
	}
	if p.StartTimeTo > 0 {
		query.Set("start_time_to", strconv.FormatInt(p.StartTimeTo, 10))
	}

	return client.GetJSON(ctx, listRunsPath, query)
}
