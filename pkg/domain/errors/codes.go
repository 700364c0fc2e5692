package errors

// Code represents an error code
type Code string

// Error codes shared across the gateway
const (
	CodeUnknown               Code = "UNKNOWN"                 // Unknown error occurred
	CodeInternalError         Code = "INTERNAL_ERROR"          // Internal system error
	CodeConfigurationInvalid  Code = "CONFIGURATION_INVALID"   // Configuration invalid or incomplete
	CodeMissingParameter      Code = "MISSING_PARAMETER"       // Required parameter missing
	CodeInvalidParameter      Code = "INVALID_PARAMETER"       // Parameter out of range or wrong type
	CodeUpstreamAPIError      Code = "UPSTREAM_API_ERROR"      // Databricks API returned a non-2xx status
	CodeNetworkError          Code = "NETWORK_ERROR"           // Outbound request could not complete
	CodeToolNotFound          Code = "TOOL_NOT_FOUND"          // Tool not found
	CodeToolAlreadyRegistered Code = "TOOL_ALREADY_REGISTERED" // Tool already registered
)
