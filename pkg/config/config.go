// Package config loads and validates RT MCP server configuration from
// environment variables.
package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Transport values accepted for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all settings for the RT gateway client and the MCP server.
type Config struct {
	// URL is the root URL of the RT installation (required).
	URL string `envconfig:"RT_URL" validate:"required,url"`

	// Token is an RT authentication token. When set it takes precedence
	// over User/Password.
	Token string `envconfig:"RT_TOKEN"`

	// User and Password form the basic-auth pair used when no token is set.
	User     string `envconfig:"RT_USER"`
	Password string `envconfig:"RT_PASSWORD"`

	// Timeout is the per-request timeout for the HTTP client.
	Timeout time.Duration `envconfig:"RT_TIMEOUT" default:"30s"`

	// VerifySSL controls TLS certificate verification.
	VerifySSL bool `envconfig:"RT_VERIFY_SSL" default:"true"`

	// BasePath is the REST2 API prefix appended to URL.
	BasePath string `envconfig:"RT_BASE_PATH" default:"/REST/2.0"`

	// Transport selects how the MCP server is exposed.
	Transport string `envconfig:"RT_MCP_TRANSPORT" default:"stdio" validate:"oneof=stdio http"`

	// Addr is the listen address for the http transport and the
	// Prometheus metrics endpoint.
	Addr string `envconfig:"RT_MCP_ADDR" default:"127.0.0.1:8000"`

	LogLevel  string `envconfig:"RT_LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"RT_LOG_PRETTY" default:"false"`
}

// Load reads configuration from the environment and validates it. It fails
// before any network call is attempted when required settings are missing or
// no authentication scheme is configured.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if _, err := cfg.AuthHeader(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AuthHeader returns the Authorization header value for the single active
// authentication scheme: token auth when RT_TOKEN is set, otherwise basic
// auth per RFC 7617 derived from RT_USER and RT_PASSWORD.
func (c *Config) AuthHeader() (string, error) {
	if c.Token != "" {
		return "token " + c.Token, nil
	}
	if c.User != "" && c.Password != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(c.User + ":" + c.Password))
		return "Basic " + creds, nil
	}
	return "", fmt.Errorf("either RT_TOKEN or both RT_USER and RT_PASSWORD must be set")
}

// BaseURL returns the full REST2 base URL. BasePath is appended unless the
// configured URL already ends with it.
func (c *Config) BaseURL() string {
	url := strings.TrimRight(c.URL, "/")
	if strings.HasSuffix(url, c.BasePath) {
		return url
	}
	return url + c.BasePath
}
