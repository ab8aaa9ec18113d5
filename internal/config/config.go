package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/lazynav-dev/lazynav/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "lazynav.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultAPIBaseURL is the default upstream API for the demo views.
	DefaultAPIBaseURL = "https://jsonplaceholder.typicode.com"
)

// Config represents the complete lazynav.json configuration.
type Config struct {
	// Name is the application name.
	Name string `json:"name,omitempty"`

	// Version is the application version.
	Version string `json:"version,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// API contains upstream API configuration for route data fetchers.
	API APIConfig `json:"api,omitempty"`

	// Modules contains view module loading configuration.
	Modules ModulesConfig `json:"modules,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// APIConfig contains upstream API settings.
type APIConfig struct {
	// BaseURL is the base URL for route data fetchers.
	BaseURL string `json:"baseUrl,omitempty"`

	// Timeout is the per-request timeout (e.g., "10s").
	Timeout string `json:"timeout,omitempty"`
}

// ModulesConfig contains view module loading settings.
type ModulesConfig struct {
	// Delay is an artificial latency added to every module load
	// (e.g., "250ms"). Useful for watching fallbacks during development.
	Delay string `json:"delay,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is the log output format: text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: "10s",
		},
		Modules: ModulesConfig{
			Delay: "250ms",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for lazynav.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault reads configuration from the specified directory,
// falling back to defaults if no lazynav.json exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E060").
				WithDetail("No lazynav.json found in " + filepath.Dir(path)).
				WithSuggestion("Create lazynav.json or run without one to use defaults").
				Wrap(err)
		}
		return nil, errors.New("E060").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E060").
			WithDetail("Failed to parse lazynav.json: " + err.Error()).
			WithSuggestion("Check that lazynav.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E060").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E060").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// APITimeout returns the parsed upstream request timeout.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ModuleDelay returns the parsed artificial module load latency.
func (c *Config) ModuleDelay() time.Duration {
	d, err := time.ParseDuration(c.Modules.Delay)
	if err != nil {
		return 0
	}
	return d
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "10s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E061").
			WithDetail(fmt.Sprintf("Port %d is out of range 0-65535", c.Server.Port))
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("E062").
			WithDetail(fmt.Sprintf("Unknown log level %q", c.Log.Level))
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown log format %q", c.Log.Format).
			WithSuggestion("Use \"text\" or \"json\"")
	}

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Newf(errors.CategoryConfig, "invalid API base URL %q", c.API.BaseURL)
		}
	}

	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			return errors.Newf(errors.CategoryConfig, "invalid API timeout %q", c.API.Timeout)
		}
	}
	if c.Modules.Delay != "" {
		if _, err := time.ParseDuration(c.Modules.Delay); err != nil {
			return errors.Newf(errors.CategoryConfig, "invalid module delay %q", c.Modules.Delay)
		}
	}

	return nil
}
