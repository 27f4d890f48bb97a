package server

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Config is the environment-backed server and pipeline configuration.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"`
	// MaxBodyBytes bounds JSON request bodies read by the pipeline.
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" envDefault:"1048576"`

	// TLS is enabled only when both files are set.
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
		MaxBodyBytes:    DefaultMaxBodyBytes,
	}
}

// NewFromConfig creates a Server from cfg. Zero durations and limits keep the
// package defaults; opts are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	var tlsConfig *tls.Config
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls key pair %s, %s: %w", cfg.TLSCertFile, cfg.TLSKeyFile, err)
		}
		tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return New(cfg.Addr, append([]Option{cfg.apply(tlsConfig)}, opts...)...), nil
}

func (cfg Config) apply(tlsConfig *tls.Config) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.readTimeout = positive(cfg.ReadTimeout, s.readTimeout)
		s.writeTimeout = positive(cfg.WriteTimeout, s.writeTimeout)
		s.idleTimeout = positive(cfg.IdleTimeout, s.idleTimeout)
		s.shutdown = positive(cfg.ShutdownTimeout, s.shutdown)
		s.maxHeaderBytes = positive(cfg.MaxHeaderBytes, s.maxHeaderBytes)
		if tlsConfig != nil {
			s.tlsConfig = tlsConfig
		}
	}
}

// HandlerOptions returns the pipeline options carried by the config.
func (cfg Config) HandlerOptions() []HandlerOption {
	return []HandlerOption{WithMaxBodyBytes(cfg.MaxBodyBytes)}
}

func positive[T int | int64 | time.Duration](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}
