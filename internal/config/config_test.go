package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "STORAGE_DRIVER", "SQLITE_PATH", "ID_STRATEGY", "SNOWFLAKE_NODE",
		"COMMISSION_RATE", "MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL",
		"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
		"COLLECTIONS_TABLE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.Equal(t, int64(1), cfg.SnowflakeNode)
	assert.True(t, cfg.CommissionRate.Equal(decimal.NewFromInt(10)))
	assert.False(t, cfg.PaymentGatewayMock)
	assert.Empty(t, cfg.MercadoPagoTestPayerEmail)
	assert.Equal(t, DynamoDBConfig{
		Table:           "ledger_collections",
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	}, cfg.DynamoDB)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("ID_STRATEGY", "snowflake")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("COMMISSION_RATE", "12.5")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("COLLECTIONS_TABLE", "workshop_prod")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA123")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("DYNAMODB_ENDPOINT", " http://dynamodb:8000 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageDriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "snowflake", cfg.IDStrategy)
	assert.Equal(t, int64(7), cfg.SnowflakeNode)
	assert.Equal(t, "12.5", cfg.CommissionRate.String())
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "test_user_br@testuser.com", cfg.MercadoPagoTestPayerEmail)
	assert.Equal(t, DynamoDBConfig{
		Table:           "workshop_prod",
		Region:          "sa-east-1",
		AccessKeyID:     "AKIA123",
		SecretAccessKey: "secret",
		Endpoint:        "http://dynamodb:8000",
	}, cfg.DynamoDB)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":            "abc",
		"STORAGE_DRIVER":  "redis",
		"SNOWFLAKE_NODE":  "x",
		"COMMISSION_RATE": "ten",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
