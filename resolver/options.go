package resolver

import (
	"fmt"
	"runtime"

	"github.com/erraggy/dref/value"
)

// Option is a function that configures a Resolver or a single resolution.
type Option func(*resolveConfig) error

// resolveConfig holds configuration for a resolution
type resolveConfig struct {
	// Resolution context for the outermost call
	root         value.Value
	cwd          string
	externalOnly bool

	// Collaborators
	decoder Decoder
	logger  Logger

	// Resource limits (0 means use default)
	maxDepth    int
	maxFileSize int64
	cacheSize   int
	workers     int
}

func applyOptions(opts ...Option) (*resolveConfig, error) {
	cfg := &resolveConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// resolutionContext returns the Context the options describe.
func (cfg *resolveConfig) resolutionContext() Context {
	return Context{Root: cfg.root, Cwd: cfg.cwd, ExternalOnly: cfg.externalOnly}
}

// WithRoot sets the document internal pointers are followed against. When
// unset, the value being resolved is its own root.
func WithRoot(root value.Value) Option {
	return func(cfg *resolveConfig) error {
		cfg.root = root
		return nil
	}
}

// WithCwd sets the directory relative file references are resolved against.
// When unset, the process working directory is used.
func WithCwd(dir string) Option {
	return func(cfg *resolveConfig) error {
		cfg.cwd = dir
		return nil
	}
}

// WithExternalOnly leaves internal "#/..." references untouched and only
// substitutes references that cross into another file.
func WithExternalOnly(enabled bool) Option {
	return func(cfg *resolveConfig) error {
		cfg.externalOnly = enabled
		return nil
	}
}

// WithDecoder sets the decoder used for external files.
// Default: codec.Decoder, which reads JSON and YAML.
func WithDecoder(d Decoder) Option {
	return func(cfg *resolveConfig) error {
		if d == nil {
			return fmt.Errorf("resolver: decoder cannot be nil")
		}
		cfg.decoder = d
		return nil
	}
}

// WithLogger sets a structured logger for debug output during resolution.
// Default: NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *resolveConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets how many references may be followed in one chain.
// A value of 0 uses the default (100).
func WithMaxDepth(n int) Option {
	return func(cfg *resolveConfig) error {
		if n < 0 {
			return fmt.Errorf("resolver: max depth cannot be negative, got %d", n)
		}
		cfg.maxDepth = n
		return nil
	}
}

// WithMaxFileSize sets the largest external file, in bytes, that will be
// loaded. A value of 0 uses the default (10 MiB).
func WithMaxFileSize(n int64) Option {
	return func(cfg *resolveConfig) error {
		if n < 0 {
			return fmt.Errorf("resolver: max file size cannot be negative, got %d", n)
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithCache keeps up to size decoded external documents in memory, keyed by
// absolute path. A value of 0 disables caching, which is the default.
func WithCache(size int) Option {
	return func(cfg *resolveConfig) error {
		if size < 0 {
			return fmt.Errorf("resolver: cache size cannot be negative, got %d", size)
		}
		cfg.cacheSize = size
		return nil
	}
}

// WithWorkers bounds how many documents ResolveFiles resolves at once.
// A value of 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *resolveConfig) error {
		if n < 0 {
			return fmt.Errorf("resolver: workers cannot be negative, got %d", n)
		}
		cfg.workers = n
		return nil
	}
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
