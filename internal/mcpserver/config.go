package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/dref/resolver"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Resolver limits.
	MaxDepth    int
	MaxFileSize int64
	CacheSize   int

	// Internal is the default for the tools' internal flag.
	Internal bool

	// MaxInlineSize caps inline content passed to a tool.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DREF_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:      envInt("DREF_MCP_MAX_DEPTH", resolver.DefaultMaxDepth),
		MaxFileSize:   envInt64("DREF_MCP_MAX_FILE_SIZE", resolver.DefaultMaxFileSize),
		CacheSize:     envInt("DREF_MCP_CACHE_SIZE", 32),
		Internal:      envBool("DREF_MCP_INTERNAL", false),
		MaxInlineSize: envInt64("DREF_MCP_MAX_INLINE_SIZE", 1024*1024),
	}
}

// resolverOptions converts the limits into resolver options.
func (c *serverConfig) resolverOptions() []resolver.Option {
	return []resolver.Option{
		resolver.WithMaxDepth(c.MaxDepth),
		resolver.WithMaxFileSize(c.MaxFileSize),
		resolver.WithCache(c.CacheSize),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
