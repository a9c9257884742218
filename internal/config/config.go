// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.flyio-demo/config.yaml or ./config.yaml)
//  3. Default values (sensible defaults for quick start)
//
// The static asset root is resolved to an absolute path once at load time
// and passed explicitly to the resolver — no ambient mutable state.
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

var (
	// ErrInvalidAddr indicates the listen address is malformed.
	ErrInvalidAddr = errors.New("invalid listen address")

	// ErrInvalidStaticDir indicates the static asset directory is invalid.
	ErrInvalidStaticDir = errors.New("invalid static directory")

	// ErrInvalidServerName indicates the MCP server name is empty.
	ErrInvalidServerName = errors.New("invalid server name")

	// ErrInvalidRateLimit indicates a non-positive rate limit setting.
	ErrInvalidRateLimit = errors.New("invalid rate limit")
)

const (
	// DefaultAddr is the default HTTP listen address.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultStaticDir is the default static asset directory.
	DefaultStaticDir = "./static"

	// DefaultServerName is the MCP implementation name.
	DefaultServerName = "Demo"
)

// TracingConfig configures optional OTLP trace export via a local
// Datadog agent. Disabled by default.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled" json:"enabled"`
	AgentHost   string `mapstructure:"agent_host" json:"agent_host"`
	Environment string `mapstructure:"environment" json:"environment"`
	ServiceName string `mapstructure:"service_name" json:"service_name"`
}

// Config stores application configuration.
type Config struct {
	// HTTP server
	Addr       string `mapstructure:"addr" json:"addr"`
	TrustProxy bool   `mapstructure:"trust_proxy" json:"trust_proxy"` // set true behind a reverse proxy

	// Static assets
	StaticDir string `mapstructure:"static_dir" json:"static_dir"`

	// MCP implementation name
	ServerName string `mapstructure:"server_name" json:"server_name"`

	// Rate limiting (token bucket per client IP)
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" json:"rate_limit_burst"`

	// Observability
	Datadog TracingConfig `mapstructure:"datadog" json:"datadog"`
}

// Load loads configuration.
// Priority: Environment variables > Configuration file > Default values
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".flyio-demo")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".") // Also support current directory

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use default values
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."},
			"config_name", "config.yaml")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// Resolve the asset root once; the resolver receives it explicitly.
	absStatic, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStaticDir, err)
	}
	cfg.StaticDir = absStatic

	// Validate immediately (fail-fast)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("addr", DefaultAddr)
	viper.SetDefault("static_dir", DefaultStaticDir)
	viper.SetDefault("server_name", DefaultServerName)

	// Proxy trust (default: false — safe for direct exposure)
	viper.SetDefault("trust_proxy", false)

	// Rate limiting
	viper.SetDefault("rate_limit_rps", 20.0)
	viper.SetDefault("rate_limit_burst", 40)

	// Datadog tracing
	viper.SetDefault("datadog.enabled", false)
	viper.SetDefault("datadog.agent_host", "localhost:4318")
	viper.SetDefault("datadog.environment", "dev")
	viper.SetDefault("datadog.service_name", "flyio-demo")
}

// bindEnvVariables binds environment variable overrides explicitly.
func bindEnvVariables() {
	// Helper to panic on unexpected bind errors (hardcoded strings can't fail).
	// If this panics, it's a BUG in our code, not a runtime error.
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("addr", "DEMO_ADDR")
	mustBind("static_dir", "DEMO_STATIC_DIR")
	mustBind("server_name", "DEMO_SERVER_NAME")
	mustBind("trust_proxy", "DEMO_TRUST_PROXY")
	mustBind("rate_limit_rps", "DEMO_RATE_RPS")
	mustBind("rate_limit_burst", "DEMO_RATE_BURST")

	mustBind("datadog.enabled", "DD_TRACING_ENABLED")
	mustBind("datadog.agent_host", "DD_AGENT_HOST")
	mustBind("datadog.environment", "DD_ENV")
	mustBind("datadog.service_name", "DD_SERVICE")
}

// Validate performs range and format checks on the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("configuration is nil")
	}

	_, port, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return fmt.Errorf("%w: %q must be host:port", ErrInvalidAddr, c.Addr)
	}
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 0 || portNum > 65535 {
		return fmt.Errorf("%w: port %q must be 0-65535", ErrInvalidAddr, port)
	}

	if c.StaticDir == "" || !filepath.IsAbs(c.StaticDir) {
		return fmt.Errorf("%w: %q must be an absolute path after loading", ErrInvalidStaticDir, c.StaticDir)
	}

	if c.ServerName == "" {
		return ErrInvalidServerName
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("%w: rate_limit_rps must be positive, got %v", ErrInvalidRateLimit, c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: rate_limit_burst must be positive, got %d", ErrInvalidRateLimit, c.RateLimitBurst)
	}

	return nil
}
