package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: emotion-detector\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Address())
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, 10000, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultClassifierEndpoint, cfg.Classifier.Endpoint)
	assert.Equal(t, DefaultClassifierModelID, cfg.Classifier.ModelID)
	assert.Equal(t, 0, cfg.Classifier.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFromFile_Values(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8080
  debug: true
classifier:
  endpoint: http://localhost:9000/EmotionPredict
  model_id: custom-model
  timeout: 2500
logging:
  format: console
metrics:
  enabled: false
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "debug", cfg.Logging.Level, "debug mode raises the log level")
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "http://localhost:9000/EmotionPredict", cfg.Classifier.Endpoint)
	assert.Equal(t, "custom-model", cfg.Classifier.ModelID)
	assert.Equal(t, 2500*time.Millisecond, GetDuration(cfg.Classifier.Timeout))
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CLASSIFIER_MODEL_ID", "from-env")
	t.Setenv("UPSTREAM_HOST", "classifier.internal")

	path := writeConfig(t, `
classifier:
  endpoint: https://${UPSTREAM_HOST}/EmotionPredict
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Classifier.ModelID)
	assert.Equal(t, "https://classifier.internal/EmotionPredict", cfg.Classifier.Endpoint)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "port out of range",
			body:    "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
		{
			name:    "relative endpoint",
			body:    "classifier:\n  endpoint: /EmotionPredict\n",
			wantErr: "classifier.endpoint",
		},
		{
			name:    "unsupported scheme",
			body:    "classifier:\n  endpoint: ftp://example.com/x\n",
			wantErr: "classifier.endpoint",
		},
		{
			name:    "negative classifier timeout",
			body:    "classifier:\n  timeout: -1\n",
			wantErr: "classifier.timeout",
		},
		{
			name:    "metrics path without slash",
			body:    "metrics:\n  path: metrics\n",
			wantErr: "metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_WithoutConfigFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("APP_ENVIRONMENT", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, DefaultClassifierEndpoint, cfg.Classifier.Endpoint)
}
