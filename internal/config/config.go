package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, backend proxy,
// payment processor, storage and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":3000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps request bodies accepted by the /api surface
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// CORS configures cross-origin access to the /api surface
	CORS struct {
		// AllowedOrigins lists origins allowed to call the API; empty or "*" allows any origin
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"cors"`

	// Backend configures the external REST backend every /api route forwards to
	Backend struct {
		// URL is the backend base URL including its version prefix
		URL string `env:"BACKEND_URL" env-default:"http://localhost:8000/api/v1" yaml:"url"`
		// AnalyzeTimeout aborts page analysis requests that take longer
		AnalyzeTimeout time.Duration `env:"BACKEND_ANALYZE_TIMEOUT" env-default:"10s" yaml:"analyzeTimeout"`
		// DialTimeout bounds connection establishment to the backend
		DialTimeout time.Duration `env:"BACKEND_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
	} `yaml:"backend"`

	// Stripe configures checkout, billing portal and webhook verification
	Stripe struct {
		// SecretKey is the Stripe API secret key
		SecretKey string `env:"STRIPE_SECRET_KEY" env-default:"sk_test_placeholder" yaml:"secretKey"`
		// WebhookSecret is the signing secret of the webhook endpoint
		WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" env-default:"whsec_placeholder" yaml:"webhookSecret"`
		// Prices maps each plan to its Stripe price id
		Prices struct {
			Starter string `env:"STRIPE_PRICE_STARTER" env-default:"price_starter" yaml:"starter"`
			Pro     string `env:"STRIPE_PRICE_PRO" env-default:"price_pro" yaml:"pro"`
			Agency  string `env:"STRIPE_PRICE_AGENCY" env-default:"price_agency" yaml:"agency"`
		} `yaml:"prices"`
	} `yaml:"stripe"`

	// App describes the public dashboard
	App struct {
		// URL is the public base URL of the dashboard, used for redirects and emailed links
		URL string `env:"APP_URL" env-default:"http://localhost:3000" yaml:"url"`
	} `yaml:"app"`

	// Auth configures the password reset flow
	Auth struct {
		// ResetTokenTTL is how long a password reset token stays valid
		ResetTokenTTL time.Duration `env:"AUTH_RESET_TOKEN_TTL" env-default:"1h" yaml:"resetTokenTTL"`
	} `yaml:"auth"`

	// Storage selects where billing customers and reset tokens are kept
	Storage struct {
		// Driver is "memory" or "postgres"
		Driver string `env:"STORAGE_DRIVER" env-default:"memory" yaml:"driver"`
	} `yaml:"storage"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"seoguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures background jobs (postgres storage only)
	Worker struct {
		// SweepInterval is how often expired reset tokens are purged
		SweepInterval time.Duration `env:"WORKER_SWEEP_INTERVAL" env-default:"15m" yaml:"sweepInterval"`
		// MaxWorkers limits concurrently running jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"2" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// DotEnvFiles are loaded, in order, before the configuration is read. Missing
// files are skipped and variables already set in the environment win.
var DotEnvFiles = []string{".env.local", ".env"} //nolint: gochecknoglobals

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(DotEnvFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

func loadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	return nil
}
