package config

import (
	"encoding/json"
	"os"

	"github.com/docuscope/docuscope-cli/internal/flagx"
	"github.com/docuscope/docuscope-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	UploaderName        string         `json:"uploader_name"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. Missing flag means no JSON is loaded. Fields
// left empty in the file keep their current values. Panics on read or
// unmarshal errors, matching the fail-fast startup path.
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

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.UploaderName != "" {
		cfg.UploaderName = jc.UploaderName
	}
}
