package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/piresc/routecalc/internal/pkg/circuitbreaker"
	"github.com/piresc/routecalc/internal/pkg/config"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/health"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/nats"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	"github.com/piresc/routecalc/internal/pkg/nsq"
	"github.com/piresc/routecalc/internal/pkg/retry"
	"github.com/piresc/routecalc/internal/pkg/server"
	"github.com/piresc/routecalc/services/route"
	"github.com/piresc/routecalc/services/route/cache"
	"github.com/piresc/routecalc/services/route/gateway"
	"github.com/piresc/routecalc/services/route/handler"
	"github.com/piresc/routecalc/services/route/repository"
	"github.com/piresc/routecalc/services/route/usecase"
)

func main() {
	appName := "route-service"
	configPath := "config/route.env"
	configs := config.InitConfig(configPath)
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("routing_backend", string(configs.Routing.Backend)),
		logger.String("job_transport", configs.Jobs.Transport),
		logger.Bool("async_calculation", configs.Jobs.AsyncCalculation),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	// Job transport
	var (
		natsClient  *nats.Client
		nsqProducer *nsq.Producer
		jobGW       route.JobGW
	)
	publishRetrier := retry.New(gateway.PublishRetryConfig(), zapLogger)

	switch configs.Jobs.Transport {
	case "nsq":
		nsqProducer, err = nsq.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		jobGW = gateway.NewNSQJobGW(nsqProducer, publishRetrier)
		healthService.AddChecker("nsq", health.NewNSQHealthChecker(nsqProducer))

	default:
		natsClient, err = nats.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = nats.EnsureDefaultStreams(ctx, natsClient)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to create JetStream streams", logger.Err(err))
		}

		logger.Info("JetStream client initialized successfully",
			logger.String("url", configs.NATS.URL),
			logger.Bool("connected", natsClient.GetConn().IsConnected()))
		jobGW = gateway.NewNATSJobGW(natsClient, publishRetrier)
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	}

	// Initialize segment cache
	segmentCache, err := cache.NewSegmentCache(configs.Cache, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize segment cache", logger.Err(err))
	}

	// Initialize routing backend
	breakers := circuitbreaker.NewManager(zapLogger)
	backend, err := gateway.NewRoutingBackend(configs.Routing, breakers)
	if err != nil {
		zapLogger.Fatal("Failed to initialize routing backend", logger.Err(err))
	}
	healthService.AddChecker("routing", health.CheckerFunc(func(ctx context.Context) error {
		report := backend.TestConnectivity(ctx)
		if !report.Success {
			return errors.New(report.Error)
		}
		return nil
	}))

	// Initialize repository
	routeRepo := repository.NewRouteRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize usecase
	routeUC := usecase.NewRouteUC(configs, routeRepo, segmentCache, backend, jobGW)

	// Initialize handlers
	routeHandler := handler.NewHandler(routeUC, natsClient, configs, nrApp, redisClient)

	if err := routeHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize calculation workers", logger.Err(err))
	}

	e := server.NewEcho(zapLogger, nrApp)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	routeHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Cleanups run last registered first: workers stop before their connections close
	components := srv.Components()
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	components.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	components.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	if natsClient != nil {
		components.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if nsqProducer != nil {
		components.Register("nsq", func(context.Context) error {
			nsqProducer.Stop()
			return nil
		})
	}
	components.Register("calculation workers", func(context.Context) error {
		routeHandler.Stop()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}
