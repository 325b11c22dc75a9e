package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/campushub/clubhub/pkg/logger"
)

// App represents the main application structure.
type App struct {
	serviceProvider *serviceProvider
}

// NewApp initializes the application and its dependencies.
func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	return a, nil
}

// Run starts the HTTP server and the background schedulers, then blocks
// until a shutdown signal arrives.
func (a *App) Run() {
	defer a.gracefulShutdown()

	logger.Log.Info("ClubHub starting")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := a.serviceProvider.Server().Start(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorf("http server: %v", err)
			sigChan <- syscall.SIGTERM
		}
	}()

	if err := a.serviceProvider.NotifyService().StartReminderScheduler(); err != nil {
		logger.Log.Errorf("failed to start event reminder scheduler: %v", err)
	}

	if err := a.serviceProvider.ReconcileService().StartScheduler(); err != nil {
		logger.Log.Errorf("failed to start reconciliation scheduler: %v", err)
	}

	sig := <-sigChan
	logger.Log.Infof("Received signal %v, starting graceful shutdown...", sig)
}

// gracefulShutdown handles cleanup of all resources
func (a *App) gracefulShutdown() {
	logger.Log.Info("Starting graceful shutdown...")

	if a.serviceProvider != nil {
		if a.serviceProvider.notifyService != nil {
			a.serviceProvider.notifyService.StopReminderScheduler()
		}
		if a.serviceProvider.reconcileService != nil {
			a.serviceProvider.reconcileService.StopScheduler()
		}

		if a.serviceProvider.server != nil {
			ctx, cancel := context.WithTimeout(context.Background(), a.serviceProvider.cfg.Server.ShutdownTimeout())
			defer cancel()
			if err := a.serviceProvider.server.Shutdown(ctx); err != nil {
				logger.Log.Errorf("Error shutting down http server: %v", err)
			} else {
				logger.Log.Info("HTTP server stopped")
			}
		}

		if a.serviceProvider.db != nil {
			logger.Log.Info("Closing database connection...")
			sqlDB, err := a.serviceProvider.db.DB()
			if err != nil {
				logger.Log.Errorf("Failed to get underlying sql.DB: %v", err)
			} else {
				if err := sqlDB.Close(); err != nil {
					logger.Log.Errorf("Error closing database connection: %v", err)
				} else {
					logger.Log.Info("Database connection closed")
				}
			}
		}
	}

	logger.Log.Info("Graceful shutdown completed")

	if err := logger.Cleanup(); err != nil {
		// Logger is already closing; nowhere left to report this.
		_ = err
	}
}

// initDeps initializes application dependencies
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
		a.initLogger,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return fmt.Errorf("init deps: %w", err)
		}
	}

	return nil
}

func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider()
	return nil
}

func (a *App) initLogger(_ context.Context) error {
	return logger.Init(logger.Config{
		Debug:     a.serviceProvider.cfg.Logger.Debug(),
		LogToFile: a.serviceProvider.cfg.Logger.LogToFile(),
		LogsDir:   a.serviceProvider.cfg.Logger.LogsDir(),
	})
}
