package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// AI providers, payment gating, billing jobs, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// DocsPath defines the URL path where the API documentation UI is served
		DocsPath string `env:"HTTP_DOCS_PATH" env-default:"/docs" yaml:"docsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"auditor" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair used for API authentication. PublicKey
	// is required by the server; PrivateKey is only needed by the jwt
	// subcommand that mints tokens.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// AI contains the provider API keys and request bounds. A provider
	// without a key is left out of the fallback chain.
	AI struct {
		// OpenAIKey is the API key for the OpenAI chat completions API
		OpenAIKey string `env:"AI_OPENAI_KEY" yaml:"openaiKey"`
		// AnthropicKey is the API key for the Anthropic messages API
		AnthropicKey string `env:"AI_ANTHROPIC_KEY" yaml:"anthropicKey"`
		// XAIKey is the API key for the xAI Grok API
		XAIKey string `env:"AI_XAI_KEY" yaml:"xaiKey"`
		// RequestTimeout bounds a single provider HTTP call
		RequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
	} `yaml:"ai"`

	// X402 contains the payment facilitator settings
	X402 struct {
		// BaseURL overrides the facilitator endpoint, mainly for tests
		BaseURL string `env:"X402_BASE_URL" yaml:"baseUrl"`
		// ReceiverAddress is the on-chain address payments are settled to
		ReceiverAddress string `env:"X402_RECEIVER_ADDRESS" yaml:"receiverAddress"`
		// RequestTimeout bounds a single facilitator HTTP call
		RequestTimeout time.Duration `env:"X402_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
	} `yaml:"x402"`

	// Billing contains the background job cadence
	Billing struct {
		// RenewalInterval is how often due subscriptions are swept
		RenewalInterval time.Duration `env:"BILLING_RENEWAL_INTERVAL" env-default:"1h" yaml:"renewalInterval"`
		// RenewalBatchSize caps the subscriptions processed per sweep
		RenewalBatchSize int `env:"BILLING_RENEWAL_BATCH_SIZE" env-default:"100" yaml:"renewalBatchSize"`
		// MonitorRefreshInterval is how often active contract monitors are refreshed
		MonitorRefreshInterval time.Duration `env:"BILLING_MONITOR_REFRESH_INTERVAL" env-default:"5m" yaml:"monitorRefreshInterval"` //nolint: lll
		// MonitorStaleAfter marks a monitor as due for a refresh
		MonitorStaleAfter time.Duration `env:"BILLING_MONITOR_STALE_AFTER" env-default:"15m" yaml:"monitorStaleAfter"`
		// MonitorBatchSize caps the monitors refreshed per run
		MonitorBatchSize int `env:"BILLING_MONITOR_BATCH_SIZE" env-default:"100" yaml:"monitorBatchSize"`
	} `yaml:"billing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
