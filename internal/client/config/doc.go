// Package config loads runtime configuration for the pickup CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend REST API
//	-t int      per-request timeout (seconds)
//	-i int      session re-check interval (seconds)
//	-d string   sqlite DSN of the local cache
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8000/api",
//	  "request_timeout": "15s",
//	  "session_check_interval": "1m",
//	  "cache_dsn": "pickup.db"
//	}
//
// Primary API
//
//   - type Config                     — holds connection and cache settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
