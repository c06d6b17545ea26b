package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultServerURL            = "http://localhost:8000"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the note-keeper API.
	// Env: NOTEKEEPER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Token is the bearer token sent with authenticated requests.
	// Env: NOTEKEEPER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds each outbound request.
	// Env: NOTEKEEPER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// clientEnvPrefix namespaces every client variable.
const clientEnvPrefix = "NOTEKEEPER_"

// GetClientConfig reads the client configuration from NOTEKEEPER_* variables,
// fills unset values from defaults and validates the result. Values set on
// override win over both.
func GetClientConfig(override ClientConfig) (*ClientConfig, error) {
	envCfg := ClientConfig{}
	if err := parseEnvWithPrefix(&envCfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	for _, src := range []ClientConfig{override, envCfg, {
		ServerURL:      DefaultServerURL,
		RequestTimeout: DefaultClientRequestTimeout,
	}} {
		if err := mergeConfig(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}
