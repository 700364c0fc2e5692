package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Result status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the normalized outcome of a tool invocation. Every handler
// returns one; no fault is allowed to propagate past the dispatch boundary
// in any other shape.
type Result struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps a payload as a success result
func Success(data any) Result {
	return Result{Status: StatusSuccess, Data: data}
}

// Error converts err into an error result
func Error(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// Errorf builds an error result from a format string
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether the result carries a failure
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// ToCallToolResult encodes the result as an MCP call result. This is the
// single code path between handler outcomes and the transport encoding.
func (r Result) ToCallToolResult() *mcp.CallToolResult {
	body, err := json.Marshal(r)
	if err != nil {
		body = []byte(fmt.Sprintf(`{"status":"error","message":"failed to encode result: %v"}`, err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: string(body)},
		},
		IsError: r.IsError(),
	}
}
