package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")

	// Set by the auth middleware after the presented API key is resolved.
	KeyWallet = key("wallet")
	KeyAccess = key("access")
)

// Access levels an API key can resolve to. Admin implies read.
const (
	AccessRead  = "read"
	AccessAdmin = "admin"
)

type Config struct {
	Service  Service
	Postgres Postgres
	Logger   Logger
	Metrics  Metrics
	Kafka    Kafka
	Invoice  Invoice
	Accounts Accounts
	Platform Platform
}

type Service struct {
	Name string `env:"LIVESTREAM_SERVICE_NAME" env-default:"livestream-service"`
	Port string `env:"LIVESTREAM_SERVICE_PORT" env-default:"8080"`
	// PublicURL is the externally reachable base URL encoded into LNURL
	// callbacks and success-action redirects, without a trailing slash.
	PublicURL string `env:"LIVESTREAM_SERVICE_PUBLIC_URL" env-required:"true"`
}

type Postgres struct {
	User     string `env:"LIVESTREAM_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"LIVESTREAM_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"LIVESTREAM_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"LIVESTREAM_SERVICE_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"LIVESTREAM_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST" env-required:"true"`
	Port string `env:"LOGGER_SERVICE_PORT" env-required:"true"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST" env-required:"true"`
	Port int    `env:"GRAFANA_PORT" env-required:"true"`
}

type Kafka struct {
	Host string `env:"KAFKA_HOST" env-required:"true"`
	Port string `env:"KAFKA_PORT" env-required:"true"`
	// Topic the invoice engine publishes settled payments to.
	PaymentTopic string `env:"KAFKA_PAYMENT_SETTLED_TOPIC" env-default:"payment_settled"`
}

// Invoice points at the external invoice engine that mints Lightning
// invoices and reports settlement status by payment hash.
type Invoice struct {
	BaseURL string        `env:"INVOICE_ENGINE_BASE_URL" env-required:"true"`
	APIKey  string        `env:"INVOICE_ENGINE_API_KEY" env-required:"true"`
	Timeout time.Duration `env:"INVOICE_ENGINE_TIMEOUT" env-default:"10s"`
}

// Accounts points at the accounts service that provisions producer
// user/wallet pairs and resolves wallet API keys.
type Accounts struct {
	BaseURL string        `env:"ACCOUNTS_SERVICE_BASE_URL" env-required:"true"`
	APIKey  string        `env:"ACCOUNTS_SERVICE_API_KEY" env-required:"true"`
	Timeout time.Duration `env:"ACCOUNTS_SERVICE_TIMEOUT" env-default:"5s"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
