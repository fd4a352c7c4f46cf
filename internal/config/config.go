package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the sakhi API configuration.
type Config struct {
	Env        string           `yaml:"env"`
	HTTP       HTTPConfig       `yaml:"http"`
	Dataset    DatasetConfig    `yaml:"dataset"`
	Redis      RedisConfig      `yaml:"redis"`
	Auth       AuthConfig       `yaml:"auth"`
	Region     RegionConfig     `yaml:"region"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // empty = auth disabled
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatasetConfig holds dataset source settings.
type DatasetConfig struct {
	Source    string `yaml:"source"`     // file, redis (default: file)
	Path      string `yaml:"path"`       // file source
	KeyPrefix string `yaml:"key_prefix"` // redis source
}

// RedisConfig holds Redis connection settings for the redis dataset source.
type RedisConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// RegionConfig holds the bounding box records are validated against.
type RegionConfig struct {
	Name   string  `yaml:"name"`
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
	MinLng float64 `yaml:"min_lng"`
	MaxLng float64 `yaml:"max_lng"`
}

// ValidationConfig holds record validation settings.
type ValidationConfig struct {
	KnownFacilities []string `yaml:"known_facilities"` // empty = built-in set
}

// Load reads configuration from a YAML file by environment name (local, dev, docker, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Env == "" {
		cfg.Env = env
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the SAKHI_ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("SAKHI_ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = "file"
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = filepath.Join("data", "sites.json")
	}
	if c.Dataset.KeyPrefix == "" {
		c.Dataset.KeyPrefix = "sakhi"
	}
	if c.Redis.ReadinessTimeout <= 0 {
		c.Redis.ReadinessTimeout = 10
	}
	if c.Region == (RegionConfig{}) {
		c.Region = RegionConfig{
			Name:   "Hoshiarpur",
			MinLat: 29,
			MaxLat: 33,
			MinLng: 73,
			MaxLng: 78,
		}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Dataset.Source {
	case "file", "redis":
		// ok
	default:
		return fmt.Errorf("dataset.source must be \"file\" or \"redis\", got %q", c.Dataset.Source)
	}
	if c.Dataset.Source == "redis" && len(c.Redis.Addrs) == 0 {
		return fmt.Errorf("redis.addrs is required for the redis dataset source")
	}
	if c.Region.MinLat >= c.Region.MaxLat {
		return fmt.Errorf("region.min_lat must be below region.max_lat, got %g and %g",
			c.Region.MinLat, c.Region.MaxLat)
	}
	if c.Region.MinLng >= c.Region.MaxLng {
		return fmt.Errorf("region.min_lng must be below region.max_lng, got %g and %g",
			c.Region.MinLng, c.Region.MaxLng)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
