package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setUp()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve runs until ctx is done, then shuts the server down gracefully.
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Подключаем хранилище
	store, err := repo.Open(ctx, cfg.Store, true, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close() // Запланированное закрытие соединения
	logger.Info("Store is ready", zap.String("driver", cfg.Store.Driver))

	srv := &http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.NewRouter(store, logger, cfg.App.MaxPageSize),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("app", cfg.App.Name), zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped successfully!")
	return nil
}
