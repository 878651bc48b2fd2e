package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/angeljsb/reactive/internal/errors"
)

const (
	// JSONFileName is the primary configuration file name.
	JSONFileName = "reactive.json"

	// YAMLFileName is the alternative configuration file name.
	YAMLFileName = "reactive.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"
)

// Config represents the reactive.json / reactive.yaml configuration.
type Config struct {
	// Name is the project name, shown in the preview page title.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty" yaml:"preview,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Metrics exposes the Prometheus endpoint at /metrics.
	Metrics bool `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Tracing enables OpenTelemetry spans for requests and events.
	Tracing bool `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the slog level: debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format selects text or json output.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Preview: PreviewConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Metrics: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// reactive.json first, then reactive.yaml. A directory with neither
// file yields the defaults.
func Load(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, JSONFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFile(jsonPath)
	}
	yamlPath := filepath.Join(dir, YAMLFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return LoadFile(yamlPath)
	}
	return New(), nil
}

// LoadFile reads configuration from the specified file path. The format
// is chosen by extension: .yaml/.yml parse as YAML, anything else as
// JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E060").
			WithDetail("Cannot read " + path).
			Wrap(err)
	}

	cfg := New()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E060").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid " + formatName(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from, as
// indented JSON.
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

// Addr returns the host:port address for the preview server.
func (c *Config) Addr() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return errors.New("E061").
			WithDetail("Got port " + strconv.Itoa(c.Preview.Port)).
			WithSuggestion("Set preview.port to a value between 1 and 65535")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown log level %q", c.Log.Level)
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func formatName(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "YAML"
	default:
		return "JSON"
	}
}

