package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mecanica_ledger/internal/adapter/persistence/storage"
	"mecanica_ledger/internal/config"
	"mecanica_ledger/internal/infrastructure/clock"
	"mecanica_ledger/internal/infrastructure/ids"
	"mecanica_ledger/internal/infrastructure/metrics"
	"mecanica_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.NewLedgerMetrics(reg)
	store := storage.NewMemoryStorage()

	ledger := usecase.NewLedgerUseCase(store, ids.UUIDGenerator{}, clock.SystemClock{}, usecase.WithLedgerMetrics(m))
	settlement := usecase.NewInvoiceSettlementUseCase(ledger, store, nil, ids.UUIDGenerator{}, clock.SystemClock{},
		usecase.WithGatewayMock(true),
		usecase.WithSettlementMetrics(m),
	)

	return NewRouter(UseCases{Ledger: ledger, Settlement: settlement}, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), zap.NewNop())
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_LedgerCascade(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/ordens-servico", `{"client":"Acme","service_type":"Oil Change","amount":200}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ServiceOrder struct {
			ID string `json:"id"`
		} `json:"service_order"`
		Invoice struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Regexp(t, `^os-`, created.ServiceOrder.ID)
	assert.Regexp(t, `^fat-`, created.Invoice.ID)
	assert.Equal(t, "pending", created.Invoice.Status)

	w = do(t, r, http.MethodGet, "/v1/ordens-servico/"+created.ServiceOrder.ID+"/faturas", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPatch, "/v1/faturas/"+created.Invoice.ID+"/pagar", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid struct {
		Outcome    string `json:"outcome"`
		Commission struct {
			BaseAmount       float64 `json:"base_amount"`
			Rate             float64 `json:"rate"`
			CommissionAmount float64 `json:"commission_amount"`
		} `json:"commission"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paid))
	assert.Equal(t, "newly_paid", paid.Outcome)
	assert.Equal(t, 200.0, paid.Commission.BaseAmount)
	assert.Equal(t, 10.0, paid.Commission.Rate)
	assert.Equal(t, 20.0, paid.Commission.CommissionAmount)

	w = do(t, r, http.MethodPatch, "/v1/faturas/"+created.Invoice.ID+"/pagar", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paid))
	assert.Equal(t, "already_paid", paid.Outcome)

	w = do(t, r, http.MethodGet, "/v1/comissoes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var commissions []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &commissions))
	assert.Len(t, commissions, 1)

	w = do(t, r, http.MethodPatch, "/v1/faturas/fat-unknown/pagar", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/v1/faturas/"+created.Invoice.ID+"/pagamentos", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ledger_invoices_paid_total{outcome="already_paid"} 1`)
	assert.Contains(t, w.Body.String(), "ledger_commissions_created_total 1")
}

func TestRouter_SettlementInMockMode(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/ordens-servico", `{"client":"Acme","service_type":"Brakes","amount":350}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Invoice struct {
			ID string `json:"id"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(t, r, http.MethodPost, "/v1/faturas/"+created.Invoice.ID+"/pagamentos", `{"mp_payload":{"payment_method_id":"pix"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/faturas/"+created.Invoice.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)

	w = do(t, r, http.MethodGet, "/v1/faturas/"+created.Invoice.ID+"/pagamentos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var payments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "approved", payments[0]["provider_status"])
}

func TestNewCollectionStorage(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("memory", func(t *testing.T) {
		s, err := newCollectionStorage(ctx, config.Config{StorageDriver: config.StorageDriverMemory}, log)
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStorage{}, s)
	})

	t.Run("none", func(t *testing.T) {
		s, err := newCollectionStorage(ctx, config.Config{StorageDriver: config.StorageDriverNone}, log)
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := newCollectionStorage(ctx, config.Config{
			StorageDriver: config.StorageDriverSQLite,
			SQLitePath:    filepath.Join(t.TempDir(), "ledger.db"),
		}, log)
		require.NoError(t, err)
		assert.IsType(t, &storage.SQLStorage{}, s)
	})

	t.Run("dynamodb", func(t *testing.T) {
		s, err := newCollectionStorage(ctx, config.Config{
			StorageDriver: config.StorageDriverDynamoDB,
			DynamoDB: config.DynamoDBConfig{
				Table:           "workshop_prod",
				Region:          "us-east-1",
				AccessKeyID:     "local",
				SecretAccessKey: "local",
				Endpoint:        "http://localhost:8000",
			},
		}, log)
		require.NoError(t, err)
		assert.IsType(t, &storage.DynamoStorage{}, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := newCollectionStorage(ctx, config.Config{StorageDriver: "redis"}, log)
		require.Error(t, err)
	})
}

func TestNewPaymentGateway(t *testing.T) {
	log := zap.NewNop()

	assert.Nil(t, newPaymentGateway(config.Config{PaymentGatewayMock: true}, log))
	assert.Nil(t, newPaymentGateway(config.Config{}, log))
	assert.NotNil(t, newPaymentGateway(config.Config{MercadoPagoAccessToken: "TEST-123"}, log))
}
