// internal/common/config/config.go
package config

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultClassifierEndpoint = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DefaultClassifierModelID  = "emotion_aggregated-workflow_lang_en_stock"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Debug           bool   `mapstructure:"debug"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds, 0 = none
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds, 0 = none
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Address returns the host:port the HTTP server binds to.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ClassifierConfig points at the remote emotion classification service.
type ClassifierConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	ModelID  string `mapstructure:"model_id"`
	Timeout  int    `mapstructure:"timeout"` // milliseconds, 0 = transport default
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func (c *Config) String() string {
	return fmt.Sprintf("%s %s (%s) on %s", c.App.Name, c.App.Version, c.App.Environment, c.Server.Address())
}
