package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wastewise/pickup/internal/flagx"
	"github.com/wastewise/pickup/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL        string         `json:"server_base_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	SessionCheckInterval timex.Duration `json:"session_check_interval"`
	CacheDSN             string         `json:"cache_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(). When no path is given the function is a no-op.
// Read or unmarshal errors panic; callers may recover if desired.
//
// Only fields present in the JSON override the existing Config values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionCheckInterval.Duration != 0 {
		cfg.SessionCheckInterval = time.Duration(jc.SessionCheckInterval.Duration)
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
}
