package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	_ "mecanica_ledger/docs" // This will be auto-generated
	"mecanica_ledger/internal/adapter/http/handlers"
	"mecanica_ledger/internal/adapter/persistence/storage"
	"mecanica_ledger/internal/config"
	"mecanica_ledger/internal/infrastructure/clock"
	"mecanica_ledger/internal/infrastructure/database"
	"mecanica_ledger/internal/infrastructure/ids"
	"mecanica_ledger/internal/infrastructure/logging"
	"mecanica_ledger/internal/infrastructure/metrics"
	"mecanica_ledger/internal/infrastructure/payments"
	"mecanica_ledger/internal/usecase"
	"mecanica_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// UseCases are the application services exposed over HTTP.
type UseCases struct {
	Ledger     usecase.ILedgerUseCase
	Settlement usecase.IInvoiceSettlementUseCase
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ucs, err := buildUseCases(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire use cases", zap.Error(err))
	}

	router := NewRouter(ucs, promhttp.Handler(), logger)

	logger.Info("server starting", zap.Int("port", cfg.Port), zap.String("storage_driver", cfg.StorageDriver))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(ucs UseCases, metricsHandler http.Handler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	serviceOrderHandler := handlers.NewServiceOrderHandler(ucs.Ledger, logger)
	invoiceHandler := handlers.NewInvoiceHandler(ucs.Ledger, logger)
	commissionHandler := handlers.NewCommissionHandler(ucs.Ledger, logger)
	paymentHandler := handlers.NewInvoicePaymentHandler(ucs.Settlement, logger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, serviceOrderHandler, invoiceHandler, commissionHandler, paymentHandler)

	return router
}

func buildUseCases(ctx context.Context, cfg config.Config, logger *zap.Logger) (UseCases, error) {
	store, err := newCollectionStorage(ctx, cfg, logger)
	if err != nil {
		return UseCases{}, err
	}

	idGen, err := ids.New(cfg.IDStrategy, cfg.SnowflakeNode)
	if err != nil {
		return UseCases{}, err
	}
	if err := usecase.ValidateCommissionRate(cfg.CommissionRate); err != nil {
		return UseCases{}, err
	}

	ledgerMetrics := metrics.Ledger()
	systemClock := clock.SystemClock{}

	ledger := usecase.NewLedgerUseCase(store, idGen, systemClock,
		usecase.WithCommissionRate(cfg.CommissionRate),
		usecase.WithLedgerMetrics(ledgerMetrics),
		usecase.WithLedgerLogger(logger),
	)

	settlement := usecase.NewInvoiceSettlementUseCase(ledger, store, newPaymentGateway(cfg, logger), idGen, systemClock,
		usecase.WithGatewayMock(cfg.PaymentGatewayMock),
		usecase.WithSandboxPayer(cfg.MercadoPagoTestPayerEmail),
		usecase.WithSettlementMetrics(ledgerMetrics),
		usecase.WithSettlementLogger(logger),
	)

	return UseCases{Ledger: ledger, Settlement: settlement}, nil
}

// newCollectionStorage resolves STORAGE_DRIVER. "none" returns a nil port:
// reads are empty and writes are dropped.
func newCollectionStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.ICollectionStorage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return storage.NewMemoryStorage(), nil
	case config.StorageDriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		sqlStorage, err := storage.NewSQLStorage(db)
		if err != nil {
			return nil, err
		}
		return sqlStorage, nil
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
		if err != nil {
			return nil, err
		}
		return storage.NewDynamoStorage(ddb, cfg.DynamoDB.Table, logger), nil
	case config.StorageDriverNone:
		logger.Warn("persistence disabled, ledger data will not be kept")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newPaymentGateway(cfg config.Config, logger *zap.Logger) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		logger.Info("payment gateway mock mode enabled")
		return nil
	}
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return mpGateway
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(logging.GinMiddleware(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
