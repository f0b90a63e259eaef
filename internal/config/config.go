package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverNone     = "none"
)

// Config is read once at startup. .env files are loaded by godotenv/autoload
// in main before Load runs.
type Config struct {
	Port     int
	AppEnv   string
	LogLevel string

	StorageDriver string
	SQLitePath    string
	DynamoDB      DynamoDBConfig

	IDStrategy    string
	SnowflakeNode int64

	CommissionRate decimal.Decimal

	MercadoPagoAccessToken    string
	MercadoPagoTestPayerEmail string
	PaymentGatewayMock        bool
}

// DynamoDBConfig feeds the dynamodb storage driver. The credential defaults
// suit DynamoDB Local, which does not validate them.
type DynamoDBConfig struct {
	Table           string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func Load() (Config, error) {
	cfg := Config{
		AppEnv:                    getenvDefault("APP_ENV", "production"),
		LogLevel:                  getenvDefault("LOG_LEVEL", "info"),
		StorageDriver:             strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDriverMemory)),
		SQLitePath:                getenvDefault("SQLITE_PATH", "ledger.db"),
		IDStrategy:                strings.ToLower(getenvDefault("ID_STRATEGY", "uuid")),
		MercadoPagoAccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		PaymentGatewayMock:        envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MERCADOPAGO_MOCK"),
	}

	cfg.DynamoDB = DynamoDBConfig{
		Table:           getenvDefault("COLLECTIONS_TABLE", "ledger_collections"),
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	switch cfg.StorageDriver {
	case StorageDriverMemory, StorageDriverSQLite, StorageDriverDynamoDB, StorageDriverNone:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER: %q", cfg.StorageDriver)
	}

	node, err := strconv.ParseInt(getenvDefault("SNOWFLAKE_NODE", "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNOWFLAKE_NODE: %w", err)
	}
	cfg.SnowflakeNode = node

	rate, err := decimal.NewFromString(getenvDefault("COMMISSION_RATE", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid COMMISSION_RATE: %w", err)
	}
	cfg.CommissionRate = rate

	// TEST- tokens only accept sandbox payers.
	if cfg.MercadoPagoTestPayerEmail == "" && strings.HasPrefix(cfg.MercadoPagoAccessToken, "TEST-") {
		cfg.MercadoPagoTestPayerEmail = "test_user_br@testuser.com"
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
