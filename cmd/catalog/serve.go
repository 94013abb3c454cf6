package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/whiteelite/catalog/internal/application/appstate"
	"github.com/whiteelite/catalog/internal/config"
	"github.com/whiteelite/catalog/internal/infrastructure/http/handlers"
	kafkarepo "github.com/whiteelite/catalog/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/catalog/internal/logger"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := openStorage(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.db.Close()

	params := kafkarepo.KafkaNotifierParams{
		Brokers:     cfg.Kafka.Brokers,
		ClientID:    cfg.Kafka.ClientID,
		SendTimeout: cfg.Kafka.SendTimeout,
	}
	broker, err := kafkarepo.InitializeKafkaNotifier(params)
	if err != nil {
		return fmt.Errorf("failed to create kafka notifier: %w", err)
	}
	log.WithFields(params.Get()).Info("kafka notifier ready")
	defer func() {
		if err := broker.Close(); err != nil {
			log.Error(err, "failed to close kafka notifier")
		}
	}()

	state := appstate.New(store.users, store.products, broker, log)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handlers.NewRouter(state, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": cfg.HTTP.Addr, "driver": cfg.Database.Driver}).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}
