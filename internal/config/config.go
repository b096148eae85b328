package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	sandboxKeyPrefix = "sandbox"
)

// Config aggregates runtime configuration grouped by concern.
// It is loaded once at startup and is read-only afterwards.
type Config struct {
	ServiceName string
	HTTP        HTTPConfig
	Pi          PiConfig
	Wallet      WalletConfig
	Checkout    CheckoutConfig
	Database    DatabaseConfig
	Kafka       KafkaConfig
	Telemetry   TelemetryConfig
}

type HTTPConfig struct {
	Addr string
}

type PiConfig struct {
	APIKey      string
	BaseURL     string
	Environment string
	Timeout     time.Duration
	Mock        bool
}

// Configured reports whether a gateway credential is present.
func (c PiConfig) Configured() bool {
	return c.APIKey != ""
}

type WalletConfig struct {
	AuthTimeout time.Duration
}

// CheckoutConfig bounds the in-memory checkout session store.
type CheckoutConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// DatabaseConfig holds DynamoDB settings. Enabled is false when no credential
// set was supplied; the service then runs without durable order writes.
type DatabaseConfig struct {
	Enabled         bool
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	OrdersTable     string
	PaymentsTable   string
	ProductsTable   string
}

type KafkaConfig struct {
	Brokers             []string
	OrdersTopic         string
	ReconciliationTopic string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type TelemetryConfig struct {
	TracesEndpoint string
}

// serviceAccount is the JSON credential form accepted in DYNAMODB_CREDENTIALS_JSON.
type serviceAccount struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: getEnv("SERVICE_NAME", "choco-checkout"),
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_LISTEN_ADDR", ":8080"),
		},
		Kafka: KafkaConfig{
			Brokers:             splitAndTrim(getEnv("KAFKA_BROKERS", "")),
			OrdersTopic:         getEnv("KAFKA_ORDERS_TOPIC", "orders.v1"),
			ReconciliationTopic: getEnv("KAFKA_RECONCILIATION_TOPIC", "payments.reconciliation.v1"),
		},
		Telemetry: TelemetryConfig{
			TracesEndpoint: strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")),
		},
	}

	var err error
	if cfg.Pi, err = loadPi(); err != nil {
		return Config{}, err
	}

	authTimeout, err := parseDuration("WALLET_AUTH_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.Wallet = WalletConfig{AuthTimeout: authTimeout}

	if cfg.Checkout, err = loadCheckout(); err != nil {
		return Config{}, err
	}

	if cfg.Database, err = loadDatabase(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadPi() (PiConfig, error) {
	timeout, err := parseDuration("PI_HTTP_TIMEOUT", 15*time.Second)
	if err != nil {
		return PiConfig{}, err
	}

	key := strings.TrimSpace(os.Getenv("PI_API_KEY"))
	env := EnvironmentForKey(key)
	baseURL := getEnv("PI_API_BASE_URL", "https://api.minepi.com")
	if env == EnvironmentSandbox {
		baseURL = getEnv("PI_SANDBOX_API_BASE_URL", "https://api.sandbox.minepi.com")
	}

	return PiConfig{
		APIKey:      key,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Environment: env,
		Timeout:     timeout,
		Mock:        isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
	}, nil
}

func loadCheckout() (CheckoutConfig, error) {
	ttl, err := parseDuration("CHECKOUT_SESSION_TTL", 30*time.Minute)
	if err != nil {
		return CheckoutConfig{}, err
	}
	maxSessions, err := parsePositiveInt("CHECKOUT_MAX_SESSIONS", 10000)
	if err != nil {
		return CheckoutConfig{}, err
	}
	return CheckoutConfig{SessionTTL: ttl, MaxSessions: maxSessions}, nil
}

func loadDatabase() (DatabaseConfig, error) {
	db := DatabaseConfig{
		Region:        getEnv("AWS_REGION", "us-east-1"),
		Endpoint:      strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		OrdersTable:   getEnv("ORDERS_TABLE", "orders"),
		PaymentsTable: getEnv("PAYMENTS_TABLE", "payments"),
		ProductsTable: getEnv("PRODUCTS_TABLE", "products"),
	}

	if raw := strings.TrimSpace(os.Getenv("DYNAMODB_CREDENTIALS_JSON")); raw != "" {
		var sa serviceAccount
		if err := json.Unmarshal([]byte(raw), &sa); err != nil {
			return DatabaseConfig{}, fmt.Errorf("parse DYNAMODB_CREDENTIALS_JSON: %w", err)
		}
		if sa.AccessKeyID == "" || sa.SecretAccessKey == "" {
			return DatabaseConfig{}, fmt.Errorf("DYNAMODB_CREDENTIALS_JSON: access_key_id and secret_access_key are required")
		}
		db.AccessKeyID = sa.AccessKeyID
		db.SecretAccessKey = sa.SecretAccessKey
		if sa.Region != "" {
			db.Region = sa.Region
		}
		if sa.Endpoint != "" {
			db.Endpoint = sa.Endpoint
		}
		db.Enabled = true
		return db, nil
	}

	db.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	db.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	// Local DynamoDB does not validate credentials, so an endpoint alone is enough.
	db.Enabled = (db.AccessKeyID != "" && db.SecretAccessKey != "") || db.Endpoint != ""
	return db, nil
}

// EnvironmentForKey picks the gateway environment from the credential's prefix.
func EnvironmentForKey(key string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(key)), sandboxKeyPrefix) {
		return EnvironmentSandbox
	}
	return EnvironmentProduction
}

// Redact returns a loggable form of a secret: at most a 4 character prefix.
func Redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "***"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive", key)
	}
	return n, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
