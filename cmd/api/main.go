package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"verifind.org/internal/auth"
	"verifind.org/internal/catalog"
	"verifind.org/internal/config"
	"verifind.org/internal/httpapi"
	"verifind.org/internal/obs"
	"verifind.org/internal/session"
	"verifind.org/internal/store/pg"
	"verifind.org/internal/stream"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := obs.NewLogger(obs.LogOptions{
		Level:      cfg.LogLevel,
		Env:        cfg.Env,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	restore := obs.SetLogger(logger)
	defer restore()

	obs.Init()
	obs.InitBuildInfo(version, commit)

	// Catalog: PostgreSQL when a DSN is configured, the demo data otherwise.
	var (
		svc   catalog.Service = catalog.NewInMemory()
		ready httpapi.ReadyProbe
		store *pg.Store
	)
	if cfg.PGDSN != "" {
		store, err = pg.Open(cfg.PGDSN)
		if err != nil {
			logger.Fatal("open db", zap.Error(err))
		}
		svc = store
		ready = httpapi.ReadyFunc(store.Ping)
	}

	sessions := session.NewRegistry(cfg.SessionIdleTTL, cfg.SessionSweep)
	sessions.OnEvicted(func(id string) {
		logger.Debug("session evicted", zap.String("session_id", id))
	})
	obs.RegisterActiveSessions(sessions.Len)

	signer, err := auth.NewSigner(cfg.AuthSecret)
	if err != nil {
		logger.Fatal("token signer", zap.Error(err))
	}

	events := stream.New()
	stopDemo := func() {}
	if cfg.DemoAlertInterval > 0 {
		stopDemo = events.StartDemo(cfg.DemoAlertInterval, func(ctx context.Context) ([]catalog.Alert, error) {
			return catalog.ActiveAlerts(ctx, svc)
		})
	}

	api, err := httpapi.New(httpapi.Options{
		Version:        version,
		Catalog:        svc,
		Sessions:       sessions,
		Signer:         signer,
		TokenTTL:       cfg.TokenTTL,
		Stream:         events,
		Ready:          ready,
		RateBurst:      cfg.RateLimitBurst,
		RatePerSec:     cfg.RateLimitRPS,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AllowedOrigins: cfg.AllowedOrigins(),
	})
	if err != nil {
		logger.Fatal("http api", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	health := httpapi.NewGRPCHealth(ready)
	health.Register(grpcSrv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go health.Watch(ctx, 10*time.Second)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("grpc listen", zap.Error(err), zap.String("addr", cfg.GRPCAddr))
	}
	go func() {
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatal("grpc serve", zap.Error(err))
		}
	}()

	logger.Info("starting verifind-api",
		zap.String("version", version),
		zap.String("http_addr", srv.Addr),
		zap.String("grpc_addr", cfg.GRPCAddr),
		zap.Bool("postgres", store != nil),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down")

	cancel()
	stopDemo()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
	if store != nil {
		_ = store.Close()
	}
	logger.Info("stopped")
}
