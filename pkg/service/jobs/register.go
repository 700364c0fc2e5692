package jobs

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
)

// Descriptors returns the Jobs tool descriptors
func Descriptors() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "jobs_list",
			Description: "List jobs in the Databricks workspace",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of jobs to return (1-100, default 20)",
					},
					"expand_tasks": map[string]any{
						"type":        "boolean",
						"description": "Include task and cluster details in the response",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "Filter by exact job name (case insensitive)",
					},
					"page_token": map[string]any{
						"type":        "string",
						"description": "Pagination token from a previous request",
					},
				},
			},
		},
		{
			Name:        "jobs_get",
			Description: "Get detailed information about a specific job",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"job_id": map[string]any{
						"type":        "integer",
						"description": "The unique identifier of the job",
					},
				},
				Required: []string{"job_id"},
			},
		},
		{
			Name:        "jobs_list_runs",
			Description: "List runs for jobs in the workspace",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"job_id": map[string]any{
						"type":        "integer",
						"description": "Filter runs for a specific job ID",
					},
					"active_only": map[string]any{
						"type":        "boolean",
						"description": "Only return active runs",
					},
					"completed_only": map[string]any{
						"type":        "boolean",
						"description": "Only return completed runs",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of runs to return (1-1000, default 20)",
					},
					"page_token": map[string]any{
						"type":        "string",
						"description": "Pagination token from a previous request",
					},
					"run_type": map[string]any{
						"type":        "string",
						"description": "Filter by run type",
						"enum":        RunTypes,
					},
					"start_time_from": map[string]any{
						"type":        "integer",
						"description": "Only runs started at or after this time (epoch milliseconds)",
					},
					"start_time_to": map[string]any{
						"type":        "integer",
						"description": "Only runs started at or before this time (epoch milliseconds)",
					},
				},
			},
		},
	}
}

// Register wires the Jobs tools into the registry
func Register(registry *tools.Registry, client *databricks.Client) error {
	return registry.Register(Descriptors, map[string]tools.Handler{
		"jobs_list":      listHandler(client),
		"jobs_get":       getHandler(client),
		"jobs_list_runs": listRunsHandler(client),
	})
}

func listHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		limit, limitSet, err := tools.OptionalInt(args, "limit")
		if err != nil {
			return tools.Error(err)
		}

		result, err := List(ctx, client, ListParams{
			Limit:       limit,
			LimitSet:    limitSet,
			ExpandTasks: tools.OptionalBool(args, "expand_tasks", false),
			Name:        tools.OptionalString(args, "name", ""),
			PageToken:   tools.OptionalString(args, "page_token", ""),
		})
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}

func getHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		jobID, set, err := tools.OptionalInt64(args, "job_id")
		if err != nil {
			return tools.Error(err)
		}
		if !set {
			return tools.Errorf("missing required parameter: job_id")
		}

		result, err := Get(ctx, client, jobID)
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}

func listRunsHandler(client *databricks.Client) tools.Handler {
	return func(ctx context.Context, args map[string]any) tools.Result {
		limit, limitSet, err := tools.OptionalInt(args, "limit")
		if err != nil {
			return tools.Error(err)
		}
		jobID, jobIDSet, err := tools.OptionalInt64(args, "job_id")
		if err != nil {
			return tools.Error(err)
		}
		startFrom, _, err := tools.OptionalInt64(args, "start_time_from")
		if err != nil {
			return tools.Error(err)
		}
		startTo, _, err := tools.OptionalInt64(args, "start_time_to")
		if err != nil {
			return tools.Error(err)
		}

		result, err := ListRuns(ctx, client, ListRunsParams{
			JobID:         jobID,
			JobIDSet:      jobIDSet,
			ActiveOnly:    tools.OptionalBool(args, "active_only", false),
			CompletedOnly: tools.OptionalBool(args, "completed_only", false),
			Limit:         limit,
			LimitSet:      limitSet,
			PageToken:     tools.OptionalString(args, "page_token", ""),
			RunType:       tools.OptionalString(args, "run_type", ""),
			StartTimeFrom: startFrom,
			StartTimeTo:   startTo,
		})
		if err != nil {
			return tools.Error(err)
		}
		return tools.Success(result)
	}
}
