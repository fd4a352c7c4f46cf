package sakhi

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	source string // "file", "redis" or "sites"

	path string

	addrs     []string
	password  string
	keyPrefix string

	sites []Site

	region     *Region
	facilities []string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithFile loads the dataset from a JSON file.
func WithFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = "file"
		c.path = path
	})
}

// WithRedis loads the dataset from a Redis instance. The blob is expected
// under the configured key prefix (see WithKeyPrefix).
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSites uses an in-memory dataset. The records still pass through
// validation, so the report reflects their quality.
func WithSites(sites []Site) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = "sites"
		c.sites = sites
	})
}

// WithKeyPrefix sets the Redis key prefix for dataset keys.
// Default: "sakhi".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithRegion replaces the bounding box records are validated against.
// Defaults to the Hoshiarpur district box.
func WithRegion(r Region) Option {
	return optionFunc(func(c *clientConfig) {
		c.region = &r
	})
}

// WithFacilityList replaces the recognized facility vocabulary used by
// validation. Unrecognized facility names raise advisories, not errors.
func WithFacilityList(names []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.facilities = names
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
