// Package config loads past settings from a YAML file, PAST_* environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/past/pkg/observability"
)

// Sentinel validation errors.
var (
	ErrInvalidPort        = errors.New("invalid server port")
	ErrInvalidWorkers     = errors.New("parser workers must not be negative")
	ErrInvalidMaxFileSize = errors.New("invalid parser max file size")
	ErrInvalidCacheSize   = errors.New("invalid parser cache size")
	ErrInvalidFormat      = errors.New("logging format must be text or json")
	ErrInvalidSampleRatio = errors.New("sample ratio must be within [0, 1]")
	ErrInvalidLevel       = errors.New("invalid logging level")
)

const (
	configName = ".past"
	configType = "yaml"
	envPrefix  = "PAST"
	maxPort    = 65535
)

// Config holds all configuration for the past tools.
type Config struct {
	Parser        ParserConfig        `mapstructure:"parser"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Server        ServerConfig        `mapstructure:"server"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ParserConfig selects the grammar and bounds the input.
type ParserConfig struct {
	Grammar string `mapstructure:"grammar"`
	// MaxFileSize is a human-readable size such as "8MiB" or "500kB".
	MaxFileSize string `mapstructure:"max_file_size"`
	// CacheSize bounds the source held by the revision mapping cache.
	CacheSize string `mapstructure:"cache_size"`
	// Workers bounds concurrent file parsing; zero means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds HTTP server configuration for past serve.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	Port         int           `mapstructure:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ObservabilityConfig holds OpenTelemetry export settings.
type ObservabilityConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	Environment  string  `mapstructure:"environment"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	RecordSource bool    `mapstructure:"record_source"`
}

// LoadConfig loads configuration from file and environment variables.
// Without configPath, .past.yaml is searched in the working directory, the
// home directory and /etc/past. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType(configType)
		viperCfg.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viperCfg.AddConfigPath(home)
		}

		viperCfg.AddConfigPath("/etc/past")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("parser.grammar", DefaultParserGrammar)
	viperCfg.SetDefault("parser.max_file_size", DefaultParserMaxFileSize)
	viperCfg.SetDefault("parser.cache_size", DefaultParserCacheSize)
	viperCfg.SetDefault("parser.workers", DefaultParserWorkers)

	viperCfg.SetDefault("logging.level", DefaultLoggingLevel)
	viperCfg.SetDefault("logging.format", DefaultLoggingFormat)

	viperCfg.SetDefault("server.host", DefaultServerHost)
	viperCfg.SetDefault("server.port", DefaultServerPort)
	viperCfg.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	viperCfg.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	viperCfg.SetDefault("server.idle_timeout", DefaultServerIdleTimeout)

	viperCfg.SetDefault("observability.otlp_endpoint", "")
	viperCfg.SetDefault("observability.otlp_headers", "")
	viperCfg.SetDefault("observability.otlp_insecure", false)
	viperCfg.SetDefault("observability.sample_ratio", DefaultObservabilitySampleRatio)
	viperCfg.SetDefault("observability.environment", DefaultObservabilityEnvironment)
	viperCfg.SetDefault("observability.record_source", false)
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, config.Server.Port)
	}

	if config.Parser.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Parser.Workers)
	}

	if _, err := config.Parser.MaxFileSizeBytes(); err != nil {
		return err
	}

	if _, err := config.Parser.CacheSizeBytes(); err != nil {
		return err
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Logging.Format)
	}

	if _, err := observability.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}

	if config.Observability.SampleRatio < 0 || config.Observability.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Observability.SampleRatio)
	}

	return nil
}

// MaxFileSizeBytes parses MaxFileSize. An empty value or "0" disables the limit.
func (p ParserConfig) MaxFileSizeBytes() (int64, error) {
	if p.MaxFileSize == "" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(p.MaxFileSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidMaxFileSize, p.MaxFileSize, err)
	}

	if size > 1<<40 {
		return 0, fmt.Errorf("%w: %q exceeds 1TiB", ErrInvalidMaxFileSize, p.MaxFileSize)
	}

	return int64(size), nil
}

// ObservabilityFor builds the observability settings for one entry point.
func (c *Config) ObservabilityFor(mode observability.AppMode, version string) observability.Config {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.Mode = mode
	cfg.Environment = c.Observability.Environment
	cfg.OTLPEndpoint = c.Observability.OTLPEndpoint
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Observability.OTLPHeaders)
	cfg.OTLPInsecure = c.Observability.OTLPInsecure
	cfg.SampleRatio = c.Observability.SampleRatio
	cfg.RecordSource = c.Observability.RecordSource
	cfg.LogJSON = c.Logging.Format == "json"

	if level, err := observability.ParseLevel(c.Logging.Level); err == nil {
		cfg.LogLevel = level
	}

	return cfg
}

// CacheSizeBytes parses CacheSize. An empty value selects the cache default.
func (p ParserConfig) CacheSizeBytes() (int64, error) {
	if p.CacheSize == "" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(p.CacheSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidCacheSize, p.CacheSize, err)
	}

	if size > 1<<40 {
		return 0, fmt.Errorf("%w: %q exceeds 1TiB", ErrInvalidCacheSize, p.CacheSize)
	}

	return int64(size), nil
}
