package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"choco_checkout/internal/adapter/http/handlers"
	"choco_checkout/internal/adapter/persistence/repository"
	"choco_checkout/internal/config"
	"choco_checkout/internal/infrastructure/database"
	"choco_checkout/internal/infrastructure/events"
	"choco_checkout/internal/infrastructure/payments"
	"choco_checkout/internal/infrastructure/telemetry"
	"choco_checkout/internal/infrastructure/wallet"
	"choco_checkout/internal/usecase"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const shutdownTimeout = 5 * time.Second

func newApp() *fx.App {
	return fx.New(appOptions())
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Load,
			newLogger,
			newDynamoDB,
			newPersistence,
			newPaymentGateway,
			newWalletAuthenticator,
			newEventPublisher,
			newCheckoutDeps,
			newUseCases,
			handlers.NewPaymentProxyHandler,
			handlers.NewCheckoutHandler,
			handlers.NewProductHandler,
			handlers.NewOrderHandler,
			handlers.NewReconciliationHandler,
			newRouter,
		),
		fx.Invoke(
			setupTelemetry,
			registerWebServer,
		),
	)
}

func newLogger(cfg config.Config) *log.Logger {
	prefix := ""
	if cfg.ServiceName != "" {
		prefix = fmt.Sprintf("[%s] ", cfg.ServiceName)
	}
	logger := log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds)
	log.SetOutput(os.Stdout)
	log.SetFlags(logger.Flags())
	log.SetPrefix(prefix)
	return logger
}

func setupTelemetry(lc fx.Lifecycle, cfg config.Config, logger *log.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Telemetry.TracesEndpoint)
			if err != nil {
				// Tracing is optional; the service keeps running without it.
				logger.Printf("[telemetry] tracer init failed err=%v", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}

// newDynamoDB returns a nil client when no database credentials are configured.
func newDynamoDB(cfg config.Config, logger *log.Logger) (*dynamodb.Client, error) {
	if !cfg.Database.Enabled {
		logger.Printf("WARNING: database not configured, orders will not be persisted")
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return database.ConnectDynamoDB(ctx, cfg.Database)
}

type persistence struct {
	fx.Out

	Ledger  interfaces.IOrderLedger
	Journal interfaces.IPaymentJournal
	Catalog interfaces.IProductCatalog
}

func newPersistence(cfg config.Config, ddb *dynamodb.Client) (persistence, error) {
	if ddb == nil {
		catalog, err := repository.NewStaticProductCatalog()
		if err != nil {
			return persistence{}, err
		}
		return persistence{
			Ledger:  repository.UnavailableOrderLedger{},
			Journal: repository.UnavailablePaymentJournal{},
			Catalog: catalog,
		}, nil
	}
	return persistence{
		Ledger:  repository.NewOrderDynamoLedger(ddb, cfg.Database.OrdersTable),
		Journal: repository.NewPaymentDynamoJournal(ddb, cfg.Database.PaymentsTable),
		Catalog: repository.NewProductDynamoRepository(ddb, cfg.Database.ProductsTable),
	}, nil
}

func newPaymentGateway(cfg config.Config, logger *log.Logger) interfaces.IPaymentGateway {
	gateway := payments.NewPiGateway(cfg.Pi)
	if !gateway.Configured() && !gateway.MockMode() {
		logger.Printf("PI_API_KEY not set, approve and complete will answer 500")
	}
	return gateway
}

func newWalletAuthenticator(cfg config.Config) interfaces.IWalletAuthenticator {
	return wallet.NewPiAuthenticator(cfg.Pi)
}

// newEventPublisher returns a nil publisher when no brokers are configured.
func newEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *log.Logger) interfaces.IEventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Printf("Kafka not configured, checkout events disabled")
		return nil
	}
	publisher := events.NewKafkaPublisher(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

type checkoutCollaborators struct {
	fx.In

	Gateway interfaces.IPaymentGateway
	Ledger  interfaces.IOrderLedger
	Journal interfaces.IPaymentJournal
	Catalog interfaces.IProductCatalog
	Wallet  interfaces.IWalletAuthenticator
	Events  interfaces.IEventPublisher
}

func newCheckoutDeps(cfg config.Config, c checkoutCollaborators) usecase.CheckoutDeps {
	return usecase.CheckoutDeps{
		Gateway:     c.Gateway,
		Ledger:      c.Ledger,
		Journal:     c.Journal,
		Catalog:     c.Catalog,
		Wallet:      c.Wallet,
		Events:      c.Events,
		AuthTimeout: cfg.Wallet.AuthTimeout,
		SessionTTL:  cfg.Checkout.SessionTTL,
		MaxSessions: cfg.Checkout.MaxSessions,
	}
}

type useCases struct {
	fx.Out

	PaymentProxy   usecase.IPaymentProxyUseCase
	Checkout       usecase.ICheckoutSessionUseCase
	Product        usecase.IProductUseCase
	Order          usecase.IOrderUseCase
	Reconciliation usecase.IReconciliationUseCase
}

func newUseCases(lc fx.Lifecycle, deps usecase.CheckoutDeps) useCases {
	sessions := usecase.NewCheckoutSessionUseCase(deps)
	registerSessionJanitor(lc, sessions, deps.SessionTTL)

	return useCases{
		PaymentProxy:   usecase.NewPaymentProxyUseCase(deps.Gateway),
		Checkout:       sessions,
		Product:        usecase.NewProductUseCase(deps.Catalog),
		Order:          usecase.NewOrderUseCase(deps.Ledger),
		Reconciliation: usecase.NewReconciliationUseCase(deps.Gateway, deps.Journal),
	}
}

// registerSessionJanitor sweeps idle checkout sessions for the lifetime of the app.
func registerSessionJanitor(lc fx.Lifecycle, sessions *usecase.CheckoutSessionUseCase, ttl time.Duration) {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	var stop func()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			stop = sessions.StartJanitor(interval)
			return nil
		},
		OnStop: func(context.Context) error {
			if stop != nil {
				stop()
			}
			return nil
		},
	})
}

func newWebServer(cfg config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           otelhttp.NewHandler(router, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerWebServer(lc fx.Lifecycle, cfg config.Config, logger *log.Logger, shutdowner fx.Shutdowner, router *gin.Engine) {
	httpServer := newWebServer(cfg, router)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Printf("HTTP API listening on %s", cfg.HTTP.Addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Printf("HTTP server error: %v", err)
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	})
}
