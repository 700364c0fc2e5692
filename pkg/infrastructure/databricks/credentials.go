package databricks

import (
	"fmt"
	"os"
	"strings"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
)

// Environment variable names for workspace credentials
const (
	EnvHost  = "DATABRICKS_HOST"
	EnvToken = "DATABRICKS_TOKEN"
)

// Credentials holds the workspace host and personal access token for one
// outbound request.
type Credentials struct {
	Host  string
	Token string
}

// CredentialProvider resolves credentials for an outbound request. The
// client calls it on every request rather than caching, so token rotation
// takes effect without a restart.
type CredentialProvider func() (Credentials, error)

// CredentialsFromEnv reads credentials from the process environment and
// fails closed when either variable is unset.
func CredentialsFromEnv() (Credentials, error) {
	host := os.Getenv(EnvHost)
	token := os.Getenv(EnvToken)

	if host == "" {
		return Credentials{}, errors.New(errors.CodeConfigurationInvalid, "databricks",
			fmt.Sprintf("environment variable %s must be set", EnvHost), nil)
	}
	if token == "" {
		return Credentials{}, errors.New(errors.CodeConfigurationInvalid, "databricks",
			fmt.Sprintf("environment variable %s must be set", EnvToken), nil)
	}
	return Credentials{Host: host, Token: token}, nil
}

// BaseURL returns the workspace base URL. A bare hostname is given an
// https scheme; a host that already carries a scheme is used verbatim.
func (c Credentials) BaseURL() string {
	host := strings.TrimRight(c.Host, "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}
