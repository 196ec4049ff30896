package config

// Parser defaults.
const (
	DefaultParserGrammar     = "rust"
	DefaultParserMaxFileSize = "8MiB"
	DefaultParserCacheSize   = "64MiB"
	DefaultParserWorkers     = 0
)

// Logging defaults.
const (
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"
)

// Server defaults.
const (
	DefaultServerHost         = "127.0.0.1"
	DefaultServerPort         = 8080
	DefaultServerReadTimeout  = "30s"
	DefaultServerWriteTimeout = "30s"
	DefaultServerIdleTimeout  = "60s"
)

// Observability defaults.
const (
	DefaultObservabilityEnvironment = "development"
	DefaultObservabilitySampleRatio = 1.0
)
