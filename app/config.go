package app

import (
	"github.com/ForestKatsch/phosphor/core/server"
)

// Config is the application configuration loaded from the environment.
type Config struct {
	Server  server.Config
	Log     LogConfig
	API     APIConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text or json
}

type APIConfig struct {
	Title       string   `env:"API_TITLE" envDefault:"phosphor"`
	Description string   `env:"API_DESCRIPTION" envDefault:""`
	Version     string   `env:"API_VERSION" envDefault:"1.0.0"`
	ServerURLs  []string `env:"API_SERVER_URLS" envSeparator:","`
}

type MetricsConfig struct {
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"phosphor"`
	Path      string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{
		Server: server.DefaultConfig(),
		Log:    LogConfig{Level: "info", Format: "text"},
		API:    APIConfig{Title: "phosphor", Version: "1.0.0"},
		Metrics: MetricsConfig{
			Namespace: server.DefaultMetricsNamespace,
			Path:      "/metrics",
		},
	}
}
