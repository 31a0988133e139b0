package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Values are read from a
// yaml file and overridden by environment variables; env names follow the
// deployment's container environment (DB_*, REDIS_*, etc.).
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations.
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on.
		Addr string `env:"BIND" env-default:":8000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers.
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing request headers.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where prometheus metrics are exposed.
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all PostgreSQL connection related configurations.
	Database struct {
		// Username for database authentication.
		Username string `env:"DB_USER" env-default:"shopapi" yaml:"username"`
		// Password for database authentication.
		Password string `env:"DB_PASSWORD" env-default:"shopapi" yaml:"password"`
		// Host is the database server hostname or IP address.
		Host string `env:"DB_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number.
		Port int `env:"DB_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection.
		SslMode string `env:"DB_SSLMODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to.
		DatabaseName string `env:"DB_NAME" env-default:"shopapi" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database.
		MaxOpenConnections int `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool.
		MaxIdleConnections int `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused.
		ConnMaxLifetime time.Duration `env:"DB_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
		ConnMaxIdleTime time.Duration `env:"DB_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains cache/blacklist store configurations.
	Redis struct {
		// Host is the redis server hostname or IP address.
		Host string `env:"REDIS_HOST" env-default:"localhost" yaml:"host"`
		// Port is the redis server port number.
		Port int `env:"REDIS_PORT" env-default:"6379" yaml:"port"`
		// DB is the redis logical database index.
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// Password for redis authentication; empty disables AUTH.
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
	} `yaml:"redis"`

	// JWT contains token signing configuration. Keys are PEM-encoded RSA keys.
	JWT struct {
		// PrivateKey signs issued tokens (serve, jwt commands).
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey verifies tokens; it may be set alone on instances that
		// only validate.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// AccessTTL is the lifetime of access tokens.
		AccessTTL time.Duration `env:"JWT_ACCESS_TTL" env-default:"30m" yaml:"accessTTL"`
		// RefreshTTL is the lifetime of refresh tokens.
		RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" env-default:"168h" yaml:"refreshTTL"`
	} `yaml:"jwt"`

	// Tracker configures the delivery tracking provider (SweetTracker).
	Tracker struct {
		// APIKey authenticates calls to the tracking provider.
		APIKey string `env:"SWEETTRACKER_API_KEY" env-default:"" yaml:"apiKey"`
		// BaseURL overrides the provider endpoint, e.g. for a smartparcel proxy.
		BaseURL string `env:"SMARTPARCEL_HOST" env-default:"https://info.sweettracker.co.kr" yaml:"baseURL"`
		// Timeout bounds each provider HTTP call.
		Timeout time.Duration `env:"SWEETTRACKER_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"tracker"`

	// Toss configures the Toss Payments gateway.
	Toss struct {
		// SecretKey is the Toss secret API key used for Basic auth.
		SecretKey string `env:"TOSS_SECRET_KEY" env-default:"" yaml:"secretKey"`
		// Mock short-circuits provider calls with canned responses. It is
		// forced on when SecretKey is a test key unless explicitly disabled.
		Mock bool `env:"TOSS_MOCK" env-default:"false" yaml:"mock"`
		// Timeout bounds each provider HTTP call.
		Timeout time.Duration `env:"TOSS_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"toss"`

	// Shipments configures the tracking pipeline.
	Shipments struct {
		// PollInterval is how often open shipments are re-polled.
		PollInterval time.Duration `env:"SHIPMENTS_POLL_INTERVAL" env-default:"2m" yaml:"pollInterval"`
		// MaxPollAttempts caps how many times a single poll job is retried.
		MaxPollAttempts int `env:"SHIPMENTS_MAX_POLL_ATTEMPTS" env-default:"3" yaml:"maxPollAttempts"`
		// NotifyWebhookURL receives shipment change notifications; empty
		// logs them instead.
		NotifyWebhookURL string `env:"SHIPMENTS_NOTIFY_WEBHOOK" env-default:"" yaml:"notifyWebhookURL"`
	} `yaml:"shipments"`

	// Worker configures the background job runtime.
	Worker struct {
		// MaxWorkers caps concurrent jobs on the default queue.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// RedisAddr returns the host:port address of the configured redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Load receives the path for a yaml config file and returns a filled Config.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
