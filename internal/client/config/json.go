package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkraev/inkpress/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as strings like "30s" and parsed with time.ParseDuration.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	RequestTimeout     string `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given by the -c/-config flags. Missing file path means no overlay.
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
