package config

import (
	"os"
	"strings"
)

// APIKeyPath is the scoped option holding the fraud service API key.
const APIKeyPath = "signifyd/general/key"

// ScopeReader resolves slash-delimited option paths, the way the host
// commerce platform exposes its scoped store configuration.
type ScopeReader interface {
	Value(path string) string
}

// EnvScope resolves option paths from environment variables:
// "signifyd/general/key" is read from SIGNIFYD_GENERAL_KEY.
type EnvScope struct{}

func (EnvScope) Value(path string) string {
	return os.Getenv(EnvKey(path))
}

// EnvKey converts an option path to its environment variable name.
func EnvKey(path string) string {
	r := strings.NewReplacer("/", "_", "-", "_", ".", "_")
	return strings.ToUpper(r.Replace(path))
}

// MapScope is a fixed set of option values, used by tests and tooling.
type MapScope map[string]string

func (m MapScope) Value(path string) string {
	return m[path]
}
