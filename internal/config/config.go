package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the configuration shared by the docs and widget services.
// Each binary reads only the sections it needs.
type Config struct {
	Docs       DocsConfig       `toml:"docs"`
	Widgets    WidgetsConfig    `toml:"widgets"`
	Market     MarketConfig     `toml:"market"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DocsConfig contains settings for the documentation MCP service.
type DocsConfig struct {
	Server         ServerConfig `toml:"server"`
	AllowedOrigins []string     `toml:"allowed_origins"`
	// FetchTimeout bounds each documentation GET. Empty or "0" means no timeout.
	FetchTimeout string `toml:"fetch_timeout"`
}

// GetFetchTimeout parses FetchTimeout, returning 0 (no timeout) when unset or invalid.
func (c *DocsConfig) GetFetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// WidgetsConfig contains settings for the widget backend.
type WidgetsConfig struct {
	Server         ServerConfig `toml:"server"`
	AllowedOrigins []string     `toml:"allowed_origins"`
}

// MarketConfig selects and configures the historical price provider.
type MarketConfig struct {
	Provider string `toml:"provider"` // "yahoo" or "eodhd"
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
	Timeout  string `toml:"timeout"`
}

// GetTimeout parses and returns the provider timeout.
func (c *MarketConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SimulationConfig holds Monte Carlo defaults.
type SimulationConfig struct {
	NumSimulations int `toml:"num_simulations"`
	NumDays        int `toml:"num_days"`
	// Seed fixes the random source when non-zero. Zero seeds from entropy per request.
	Seed uint64 `toml:"seed"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies PORT and VIRE_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	// PORT is the platform convention for the docs service; VIRE_DOCS_PORT wins if both are set.
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Docs.Server.Port = p
		}
	}
	if port := os.Getenv("VIRE_DOCS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Docs.Server.Port = p
		}
	}
	if port := os.Getenv("VIRE_WIDGETS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Widgets.Server.Port = p
		}
	}
	if origins := os.Getenv("VIRE_WIDGETS_ORIGINS"); origins != "" {
		config.Widgets.AllowedOrigins = splitList(origins)
	}
	if provider := os.Getenv("VIRE_MARKET_PROVIDER"); provider != "" {
		config.Market.Provider = provider
	}
	if baseURL := os.Getenv("VIRE_MARKET_BASE_URL"); baseURL != "" {
		config.Market.BaseURL = baseURL
	}
	if key := os.Getenv("VIRE_MARKET_API_KEY"); key != "" {
		config.Market.APIKey = key
	}
	if seed := os.Getenv("VIRE_SIMULATION_SEED"); seed != "" {
		if s, err := strconv.ParseUint(seed, 10, 64); err == nil {
			config.Simulation.Seed = s
		}
	}
	if level := os.Getenv("VIRE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ApplyFlagOverrides applies command-line flag overrides to a service's server config.
func ApplyFlagOverrides(server *ServerConfig, port int, host string) {
	if port > 0 {
		server.Port = port
	}
	if host != "" {
		server.Host = host
	}
}

// ValidateDocs returns the configuration problems that would stop the docs
// service. Market, simulation and widget settings are not consulted.
func (c *Config) ValidateDocs() []string {
	var issues []string
	issues = append(issues, validatePort("docs.server", c.Docs.Server)...)
	issues = append(issues, validateOrigins("docs.allowed_origins", c.Docs.AllowedOrigins)...)
	return issues
}

// ValidateWidgets returns the configuration problems that would stop the
// widget server.
func (c *Config) ValidateWidgets() []string {
	var issues []string
	issues = append(issues, validatePort("widgets.server", c.Widgets.Server)...)

	switch strings.ToLower(c.Market.Provider) {
	case "yahoo":
	case "eodhd":
		if c.Market.APIKey == "" {
			issues = append(issues, "market.api_key is required when market.provider is \"eodhd\" (or set VIRE_MARKET_API_KEY)")
		}
	default:
		issues = append(issues, fmt.Sprintf("market.provider must be \"yahoo\" or \"eodhd\" (got %q)", c.Market.Provider))
	}
	if c.Market.BaseURL != "" {
		if u, err := url.Parse(c.Market.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, fmt.Sprintf("market.base_url is not an absolute URL: %q", c.Market.BaseURL))
		}
	}

	if c.Simulation.NumSimulations <= 0 {
		issues = append(issues, "simulation.num_simulations must be positive")
	}
	if c.Simulation.NumDays <= 0 {
		issues = append(issues, "simulation.num_days must be positive")
	}

	issues = append(issues, validateOrigins("widgets.allowed_origins", c.Widgets.AllowedOrigins)...)
	return issues
}

func validatePort(name string, s ServerConfig) []string {
	if s.Port <= 0 || s.Port > 65535 {
		return []string{fmt.Sprintf("%s.port must be between 1 and 65535 (got %d)", name, s.Port)}
	}
	return nil
}

func validateOrigins(name string, origins []string) []string {
	var issues []string
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, fmt.Sprintf("%s entry is not an origin: %q", name, origin))
		}
	}
	return issues
}
