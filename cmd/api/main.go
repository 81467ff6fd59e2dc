package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/catalog"
	"github.com/mindhavenapp/mindhaven/backend/internal/config"
	"github.com/mindhavenapp/mindhaven/backend/internal/emotion"
	"github.com/mindhavenapp/mindhaven/backend/internal/flow"
	"github.com/mindhavenapp/mindhaven/backend/internal/handler"
	chatService "github.com/mindhavenapp/mindhaven/backend/internal/service/chat"
	classifyService "github.com/mindhavenapp/mindhaven/backend/internal/service/classify"
	journalService "github.com/mindhavenapp/mindhaven/backend/internal/service/journal"
	ventService "github.com/mindhavenapp/mindhaven/backend/internal/service/vent"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using system environment only")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	store, err := newStore(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	sampler := emotion.NewSampler()
	flows := flow.NewRegistry()
	picker := catalog.NewLockedRand(rand.Int63())

	router := handler.NewRouter(handler.Services{
		Chat:     chatService.NewService(store, sampler, flows, logger),
		Classify: classifyService.NewService(),
		Journal:  journalService.NewService(store, picker, logger),
		Vent:     ventService.NewService(store, logger),
		Sampler:  sampler,
		Flows:    flows,
		Logger:   logger,
	})

	startServer(ctx, cfg.Server, router, logger)
}

func newStore(cfg config.DatabaseConfig, logger *zap.Logger) (storage.Store, error) {
	if cfg.UseInMemory {
		logger.Info("using in-memory storage")
		return storage.NewMemoryStore(), nil
	}

	store, err := storage.NewPostgresStore(storage.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		DBName:   cfg.DBName,
		SSLMode:  cfg.SSLMode,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("dbname", cfg.DBName))
	return store, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("mindhaven backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
