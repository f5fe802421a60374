package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lmnode/internal/common/fsutil"
	"lmnode/internal/lmstudio"
	"lmnode/internal/node"
)

// Config holds runtime parameters for the CLI and the HTTP service.
type Config struct {
	// Host is the LM Studio base URL or host[:port].
	Host   string `json:"host" yaml:"host" toml:"host"`
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`

	Addr         string   `json:"addr" yaml:"addr" toml:"addr"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORSEnabled  bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	// ExecuteTimeoutSeconds bounds a whole /execute batch; 0 disables.
	ExecuteTimeoutSeconds int64 `json:"execute_timeout_seconds" yaml:"execute_timeout_seconds" toml:"execute_timeout_seconds"`

	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file" toml:"log_file"`

	// Node holds default node parameters; /execute requests may override them.
	Node node.Params `json:"node" yaml:"node" toml:"node"`
}

// Environment variables consulted by ApplyEnv and Resolve.
const (
	EnvConfig   = "LMNODE_CONFIG"
	EnvHost     = "LMNODE_HOST"
	EnvAPIKey   = "LMNODE_API_KEY"
	EnvAddr     = "LMNODE_ADDR"
	EnvLogLevel = "LMNODE_LOG_LEVEL"
	EnvLogFile  = "LMNODE_LOG_FILE"
	EnvTimeout  = "LMNODE_TIMEOUT_SECONDS"
)

// defaultConfigFiles are probed in order when no path is given.
var defaultConfigFiles = []string{"lmnode.yaml", "lmnode.yml", "lmnode.toml", "lmnode.json"}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Host:         lmstudio.DefaultHost,
		Addr:         ":8080",
		MaxBodyBytes: 1 << 20,
		LogLevel:     "info",
		Node:         node.DefaultParams(),
	}
}

// Credentials extracts the LM Studio connection settings.
func (c Config) Credentials() lmstudio.Credentials {
	return lmstudio.Credentials{Host: c.Host, APIKey: c.APIKey}
}

// Load reads a configuration file over Defaults based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: Defaults, then the config file
// (explicit path, LMNODE_CONFIG, or the first lmnode.* in the working
// directory), then environment overrides. The result is validated.
func Resolve(path string) (Config, error) {
	cfg := Defaults()
	if p := discoverConfigFile(path); p != "" {
		loaded, err := Load(p)
		if err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", p, err)
		}
		cfg = loaded
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func discoverConfigFile(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	for _, p := range defaultConfigFiles {
		if fsutil.PathExists(p) {
			return p
		}
	}
	return ""
}

// ApplyEnv overlays LMNODE_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Node.TimeoutSeconds = n
	}
	return nil
}

// Validate checks the configuration for values the node cannot run with.
func (c Config) Validate() error {
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must not be negative")
	}
	if c.ExecuteTimeoutSeconds < 0 {
		return fmt.Errorf("execute_timeout_seconds must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "off", "disabled":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if err := c.Node.Validate(); err != nil {
		return fmt.Errorf("node: %w", err)
	}
	return nil
}
