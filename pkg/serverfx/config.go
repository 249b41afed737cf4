package serverfx

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment, then adjusted by Options.
type Config struct {
	Service       string `env:"SERVICE_NAME" envDefault:"routes"`
	ListenAddress string `env:"SERVER_LISTEN_ADDRESS" envDefault:":3000"`
	BasePath      string `env:"ROUTES_BASE_PATH"` // empty: manifest base_path, else "/"
	ManifestPath  string `env:"ROUTES_MANIFEST"`
	TLSCert       string `env:"SSL_SERVER_CERTIFICATE"`
	TLSKey        string `env:"SSL_SERVER_KEY"`
}

type Option func(*Config)

func WithService(s string) Option       { return func(c *Config) { c.Service = s } }
func WithListenAddress(a string) Option { return func(c *Config) { c.ListenAddress = a } }
func WithBasePath(p string) Option      { return func(c *Config) { c.BasePath = p } }
func WithManifest(path string) Option   { return func(c *Config) { c.ManifestPath = path } }
func WithTLS(cert, key string) Option {
	return func(c *Config) { c.TLSCert, c.TLSKey = cert, key }
}

func loadConfig(opts []Option) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("serverfx: env: %w", err)
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg, nil
}
