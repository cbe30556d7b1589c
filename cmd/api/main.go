package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "portal_posvenda/docs"
	"portal_posvenda/internal/adapter/http/handlers"
	"portal_posvenda/internal/adapter/http/routes"
	"portal_posvenda/internal/adapter/persistence/repository"
	"portal_posvenda/internal/config"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/cache"
	"portal_posvenda/internal/infrastructure/database"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/infrastructure/metrics"
	"portal_posvenda/internal/usecase"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           Portal Pós-Venda Warranty API
// @version         1.0
// @description     Warranty request flow, SLA tracking and client automations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

type storage struct {
	warranties    interfaces.IWarrantyRequestRepository
	notifications interfaces.INotificationRepository
	auditLogs     interfaces.IAuditLogRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, err := initStorage(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to init storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	readiness := map[string]routes.ReadinessCheck{}
	var ledger interfaces.IAlertLedger = repository.NewSLAAlertMemoryLedger()
	if cfg.Redis.Enabled {
		rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		ledger = repository.NewSLAAlertRedisLedger(rdb, cfg.Redis.KeyPrefix, cfg.SLA.AlertTTL)
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	configs := usecase.NewSLAConfigStore(zapLogger, entities.DefaultSLAConfigs())
	calc := usecase.NewSLACalculator(configs)
	outbox := usecase.NewSnapshotOutbox(store.warranties, cfg.Storage.OutboxCapacity, zapLogger, m)
	flow := usecase.NewWarrantyFlowUseCase(configs, calc, outbox, zapLogger, m)

	saved, err := store.warranties.List(ctx)
	if err != nil {
		zapLogger.Fatal("failed to load warranty requests", zap.Error(err))
	}
	zapLogger.Info("warranty requests restored", zap.Int("count", flow.Restore(saved)))

	clients := usecase.NewClientStageUseCase(zapLogger)
	notifications := usecase.NewNotificationUseCase(store.notifications, zapLogger)
	audit := usecase.NewAuditLogUseCase(store.auditLogs, zapLogger)
	automation := usecase.NewWarrantyAutomationUseCase(flow, calc, notifications, audit, clients, ledger,
		usecase.AutomationOptions{
			AdminRecipientID:      cfg.SLA.AdminRecipientID,
			WarningThresholdHours: cfg.SLA.WarningThresholdHours,
		}, zapLogger, m)

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		outbox.Run(ctx)
	}()
	go runSLASweep(ctx, automation, cfg.SLA.SweepInterval, zapLogger)

	router := routes.NewRouter(routes.Handlers{
		Warranty:  handlers.NewWarrantyHandler(flow, automation, zapLogger),
		SLAConfig: handlers.NewSLAConfigHandler(configs),
		Client:    handlers.NewClientHandler(clients, automation, notifications, zapLogger),
		AuditLog:  handlers.NewAuditLogHandler(audit),
	}, zapLogger, routes.Options{Gatherer: reg, Readiness: readiness})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("server starting", zap.Int("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	stop()
	<-drained
	zapLogger.Info("server exited")
}

func initStorage(ctx context.Context, cfg *config.Config) (storage, error) {
	if cfg.Storage.Driver != config.StorageDynamoDB {
		return storage{
			warranties:    repository.NewWarrantyRequestMemoryRepository(),
			notifications: repository.NewNotificationMemoryRepository(),
			auditLogs:     repository.NewAuditLogMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return storage{}, err
	}
	return storage{
		warranties:    repository.NewWarrantyRequestDynamoRepository(ddb, cfg.Tables.WarrantyRequests),
		notifications: repository.NewNotificationDynamoRepository(ddb, cfg.Tables.Notifications),
		auditLogs:     repository.NewAuditLogDynamoRepository(ddb, cfg.Tables.AuditLogs),
	}, nil
}

func runSLASweep(ctx context.Context, automation usecase.IWarrantyAutomationUseCase, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		log.Info("sla sweep disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report := automation.SweepSLA(ctx)
			log.Info("sla sweep finished",
				zap.Int("checked", report.Checked),
				zap.Int("warnings", report.WarningsSent),
				zap.Int("expired", report.ExpiredSent),
				zap.Int("failures", report.Failures))
		}
	}
}
