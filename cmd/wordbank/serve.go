package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordbank/internal/config"
	"wordbank/internal/handler"
	"wordbank/internal/repository/postgres"
	"wordbank/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	logger.Info("Starting Word Bank bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Info("Configuration loaded successfully",
		zap.Stringer("locale", cfg.WordBank.Locale),
		zap.Duration("store_idle_ttl", cfg.WordBank.StoreIdleTTL),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.Database.DSN(), 30, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		return err
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	slotRepo := postgres.NewSlotRepo(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	launchService := service.NewLaunchService(slotRepo)
	registry := service.NewStoreRegistry(slotRepo, logger, service.WithLocale(cfg.WordBank.Locale))
	defer registry.Close()
	maintenance := service.NewMaintenanceService(registry, cfg.WordBank.StoreIdleTTL, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler failed", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(bot, authService, launchService, registry, logger)
	h.RegisterHandlers()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runEvictionJob(ctx, maintenance, cfg.WordBank.StoreIdleTTL)
		return nil
	})

	g.Go(func() error {
		logger.Info("Bot started successfully")
		bot.Start()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received, stopping bot...")
		bot.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Bot stopped gracefully")
	return nil
}

// runEvictionJob periodically unloads stores that have been idle too long
func runEvictionJob(ctx context.Context, maintenance *service.MaintenanceService, idleTTL time.Duration) {
	interval := idleTTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Eviction job stopped")
			return
		case <-ticker.C:
			maintenance.EvictIdleStores()
		}
	}
}
