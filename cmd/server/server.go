package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SnickALt21/juego-pardo/internal/clients/telegram"
	"github.com/SnickALt21/juego-pardo/internal/config"
	"github.com/SnickALt21/juego-pardo/internal/handlers/api"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/combat"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/loot"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/matchmaking"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/mission"
	"github.com/SnickALt21/juego-pardo/internal/pkg/clock"
	"github.com/SnickALt21/juego-pardo/internal/pkg/idgen"
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
	redisclient "github.com/SnickALt21/juego-pardo/internal/redis"
	"github.com/SnickALt21/juego-pardo/internal/repositories/matches"
	"github.com/SnickALt21/juego-pardo/internal/repositories/queue"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the game API server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := rng.New()
	clk := clock.New()

	combatSvc, err := combat.NewOrchestrator(&combat.Config{Source: source})
	if err != nil {
		return fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	lootSvc, err := loot.NewOrchestrator(&loot.Config{Source: source})
	if err != nil {
		return fmt.Errorf("failed to create loot orchestrator: %w", err)
	}

	missionSvc, err := mission.NewOrchestrator(&mission.Config{
		Loot:   lootSvc,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("failed to create mission orchestrator: %w", err)
	}

	var matchRepo matches.Repository
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}

		matchRepo, err = matches.NewRedisRepository(&matches.Config{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return fmt.Errorf("failed to create match repository: %w", err)
		}
	} else {
		slog.Warn("REDIS_ADDR not set, match recording disabled")
	}

	matchmakingSvc, err := matchmaking.NewOrchestrator(&matchmaking.Config{
		Queue:       queue.NewInMemory(),
		Matches:     matchRepo,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("match"),
	})
	if err != nil {
		return fmt.Errorf("failed to create matchmaking orchestrator: %w", err)
	}

	var telegramClient *telegram.Client
	if cfg.TelegramEnabled() {
		telegramClient, err = telegram.New(&telegram.Config{Token: cfg.BotToken})
		if err != nil {
			return fmt.Errorf("failed to create telegram client: %w", err)
		}

		webhookURL := cfg.WebhookURL
		if webhookURL != "" {
			webhookURL += "/webhook"
		}
		if err := telegramClient.SetWebhook(ctx, webhookURL); err != nil {
			slog.Error("Failed to register telegram webhook", "error", err)
		} else if webhookURL != "" {
			slog.Info("Telegram webhook registered", "url", webhookURL)
		}
	} else {
		slog.Warn("BOT_TOKEN not set, telegram plumbing disabled")
	}

	handler, err := api.NewHandler(&api.Config{
		Combat:      combatSvc,
		Loot:        lootSvc,
		Mission:     missionSvc,
		Matchmaking: matchmakingSvc,
		Telegram:    telegramClient,
		GameURL:     cfg.GameURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
