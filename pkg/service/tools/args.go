package tools

import (
	"fmt"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
)

// ExtractString extracts a required string parameter from arguments
func ExtractString(args map[string]any, key string) (string, error) {
	value, exists := args[key]
	if !exists {
		return "", errors.New(errors.CodeMissingParameter, "tools",
			fmt.Sprintf("missing required parameter: %s", key), nil)
	}

	str, ok := value.(string)
	if !ok {
		return "", errors.New(errors.CodeInvalidParameter, "tools",
			fmt.Sprintf("parameter %s must be a string", key), nil)
	}
	if str == "" {
		return "", errors.New(errors.CodeMissingParameter, "tools",
			fmt.Sprintf("parameter %s cannot be empty", key), nil)
	}
	return str, nil
}

// OptionalString extracts an optional string parameter, falling back to
// defaultValue when absent or empty
func OptionalString(args map[string]any, key string, defaultValue string) string {
	value, exists := args[key]
	if !exists {
		return defaultValue
	}
	str, ok := value.(string)
	if !ok || str == "" {
		return defaultValue
	}
	return str
}

// OptionalBool extracts an optional boolean parameter
func OptionalBool(args map[string]any, key string, defaultValue bool) bool {
	value, exists := args[key]
	if !exists {
		return defaultValue
	}
	b, ok := value.(bool)
	if !ok {
		return defaultValue
	}
	return b
}

// OptionalInt extracts an optional integer parameter, reporting presence.
// JSON decoding delivers numbers as float64; both forms are accepted.
func OptionalInt(args map[string]any, key string) (int, bool, error) {
	value, exists := args[key]
	if !exists {
		return 0, false, nil
	}
	switch v := value.(type) {
	case float64:
		return int(v), true, nil
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	default:
		return 0, false, errors.New(errors.CodeInvalidParameter, "tools",
			fmt.Sprintf("parameter %s must be a number", key), nil)
	}
}

// OptionalInt64 extracts an optional 64-bit integer parameter
func OptionalInt64(args map[string]any, key string) (int64, bool, error) {
	value, exists := args[key]
	if !exists {
		return 0, false, nil
	}
	switch v := value.(type) {
	case float64:
		return int64(v), true, nil
	case int:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	default:
		return 0, false, errors.New(errors.CodeInvalidParameter, "tools",
			fmt.Sprintf("parameter %s must be a number", key), nil)
	}
}

// OneOf validates that value is a member of allowed
func OneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.New(errors.CodeInvalidParameter, "tools",
		fmt.Sprintf("parameter %s must be one of %v, got %q", key, allowed, value), nil)
}
