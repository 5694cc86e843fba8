package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"word-finder/internal/api"
	"word-finder/internal/config"
	"word-finder/internal/logging"
	"word-finder/internal/matcher"
	"word-finder/internal/wordstore"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		addr      string
		wordsPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Load the word list and serve filter queries over HTTP.

If the word list cannot be loaded the service still starts and answers every
query with 503 until it is restarted with a readable file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts, cmd, wordsPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&wordsPath, "words", "words_alpha.txt", "path to the word list")

	return cmd
}

func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store := openStore(cfg.WordsPath, logger)

	server := api.NewServer(store, api.Options{
		MaxResults:     cfg.MaxResults,
		AllowedOrigins: cfg.AllowedOrigins,
		Scanner:        matcher.Scanner{Workers: cfg.Scan.Workers, ChunkSize: cfg.Scan.ChunkSize},
		Logger:         logger,
	})

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openStore loads the dictionary, falling back to an empty store when it
// cannot be read.
func openStore(path string, logger *slog.Logger) *wordstore.Store {
	store, err := wordstore.LoadOrEmpty(path)
	if err != nil {
		logger.Warn("word list unavailable, serving degraded", "path", path, "error", err)
		return store
	}
	logger.Info("loaded word list", "path", path, "words", store.Len())
	return store
}
