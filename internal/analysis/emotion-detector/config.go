// internal/analysis/emotion-detector/config.go
package emotiondetector

import (
	"time"

	"emotion-detector/internal/common/config"
)

// ModelIDHeader selects the model variant on the classification service.
const ModelIDHeader = "grpc-metadata-mm-model-id"

type Config struct {
	Endpoint string
	ModelID  string
	Timeout  time.Duration // zero keeps the transport default
}

func LoadConfig() *Config {
	return &Config{
		Endpoint: config.DefaultClassifierEndpoint,
		ModelID:  config.DefaultClassifierModelID,
	}
}

// ConfigFrom converts the application's classifier section. Empty values fall
// back to the defaults.
func ConfigFrom(cfg config.ClassifierConfig) *Config {
	c := LoadConfig()
	if cfg.Endpoint != "" {
		c.Endpoint = cfg.Endpoint
	}
	if cfg.ModelID != "" {
		c.ModelID = cfg.ModelID
	}
	c.Timeout = config.GetDuration(cfg.Timeout)
	return c
}
