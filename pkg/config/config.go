// Package config loads API settings from defaults, an optional YAML file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"grubdash/pkg/idgen"
)

// Config holds every runtime setting of the API.
type Config struct {
	Addr             string        `yaml:"addr"`
	TLSCert          string        `yaml:"tls_cert"`
	TLSKey           string        `yaml:"tls_key"`
	LogLevel         string        `yaml:"log_level"`
	ServiceName      string        `yaml:"service_name"`
	OTELHost         string        `yaml:"otel_host"`
	OTELStdout       bool          `yaml:"otel_stdout"`
	TraceProbability float64       `yaml:"trace_probability"`
	IDStrategy       string        `yaml:"id_strategy"`
	RedisAddr        string        `yaml:"redis_addr"`
	AMQPURL          string        `yaml:"amqp_url"`
	AMQPExchange     string        `yaml:"amqp_exchange"`
	SeedFile         string        `yaml:"seed_file"`
	CORSOrigins      []string      `yaml:"cors_origins"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:             ":8080",
		LogLevel:         "info",
		ServiceName:      "grubdash",
		TraceProbability: 1.0,
		IDStrategy:       idgen.StrategySequence,
		AMQPExchange:     "orders_topic",
		CORSOrigins:      []string{"*"},
		ShutdownTimeout:  10 * time.Second,
	}
}

// Load reads path (if non-empty) over the defaults, then applies env
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.TLSCert = getEnv("TLS_CERT", cfg.TLSCert)
	cfg.TLSKey = getEnv("TLS_KEY", cfg.TLSKey)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.OTELHost = getEnv("OTEL_HOST", cfg.OTELHost)
	cfg.IDStrategy = getEnv("ID_STRATEGY", cfg.IDStrategy)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.AMQPURL = getEnv("AMQP_URL", cfg.AMQPURL)
	cfg.AMQPExchange = getEnv("AMQP_EXCHANGE", cfg.AMQPExchange)
	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)

	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("OTEL_STDOUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OTEL_STDOUT: %w", err)
		}
		cfg.OTELStdout = b
	}
	if v, ok := os.LookupEnv("OTEL_PROBABILITY"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OTEL_PROBABILITY: %w", err)
		}
		cfg.TraceProbability = f
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// Validate rejects inconsistent settings.
func (c Config) Validate() error {
	switch c.IDStrategy {
	case idgen.StrategySequence, idgen.StrategyUUID:
	case idgen.StrategyRedis:
		if c.RedisAddr == "" {
			return errors.New("id_strategy redis requires redis_addr")
		}
	default:
		return fmt.Errorf("unknown id_strategy %q", c.IDStrategy)
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("tls_cert and tls_key must be set together")
	}
	if c.TraceProbability < 0 || c.TraceProbability > 1 {
		return fmt.Errorf("trace_probability %v out of range [0,1]", c.TraceProbability)
	}
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	return nil
}

// TLS reports whether the server should serve HTTPS.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
