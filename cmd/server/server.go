package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/genroll/roulette-api/internal/clients/catalogsource"
	v1 "github.com/genroll/roulette-api/internal/handlers/api/v1"
	"github.com/genroll/roulette-api/internal/orchestrators/gacha"
	"github.com/genroll/roulette-api/internal/pkg/clock"
	"github.com/genroll/roulette-api/internal/pkg/frames"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
	"github.com/genroll/roulette-api/internal/pkg/rng"
	"github.com/genroll/roulette-api/internal/redis"
	"github.com/genroll/roulette-api/internal/repositories/state"
)

// serverConfig is parsed from the environment; flags override
type serverConfig struct {
	Addr          string        `env:"ROULETTE_ADDR" envDefault:":8080"`
	RedisEndpoint string        `env:"ROULETTE_REDIS_ENDPOINT" envDefault:"localhost:6379"`
	ProfileTTL    time.Duration `env:"ROULETTE_PROFILE_TTL" envDefault:"8760h"`
	CatalogOnBoot bool          `env:"ROULETTE_CATALOG_ON_BOOT" envDefault:"true"`
}

var (
	flagAddr  string
	flagRedis string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the roulette API server with the REST and WebSocket endpoints.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides ROULETTE_ADDR)")
	serverCmd.Flags().StringVar(&flagRedis, "redis", "", "redis endpoint (overrides ROULETTE_REDIS_ENDPOINT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = flagAddr
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisEndpoint = flagRedis
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return err
	}

	stateRepo, err := state.NewRedisRepository(&state.Config{
		Client:      redisClient,
		IDGenerator: idgen.NewUUID("hist"),
		TTL:         cfg.ProfileTTL,
	})
	if err != nil {
		return err
	}

	catalogClient, err := catalogsource.New(&catalogsource.Config{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Clock:      clock.New(),
	})
	if err != nil {
		return err
	}

	hub := v1.NewHub()

	orchestrator, err := gacha.NewOrchestrator(&gacha.Config{
		StateRepo:     stateRepo,
		CatalogClient: catalogClient,
		Clock:         clock.New(),
		IDGenerator:   idgen.NewUUID("hist"),
		RNG:           rng.New(),
		Frames:        frames.NewTicker(frames.DefaultInterval),
		Events:        hub,
	})
	if err != nil {
		return err
	}

	handler, err := v1.NewHandler(&v1.Config{
		Service: orchestrator,
		Hub:     hub,
	})
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router.Group("/api/v1"))

	go orchestrator.RunFrames(ctx)

	if cfg.CatalogOnBoot {
		go func() {
			if _, err := orchestrator.RefreshCatalog(ctx, &gacha.RefreshCatalogInput{}); err != nil {
				slog.Error("initial catalog load failed", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			return err
		}

		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
