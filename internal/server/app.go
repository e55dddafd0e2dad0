// Package server wires the store, the services and both transports together
// and runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/addrkeeper/internal/filex"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/dmitrijs2005/addrkeeper/internal/server/config"
	"github.com/dmitrijs2005/addrkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/addrkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/addrkeeper/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	credentials  *services.CredentialService
	usage        *services.UsageService
	grpcServer   *gs.GRPCServer
	httpServer   *httpapi.HTTPServer
	stopOnSignal bool
}

// NewApp opens the store, applies migrations and builds the services.
// The returned App owns the connection pool and closes it when Run returns.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	m, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	if c.DatabaseDriver == repomanager.DriverSQLite {
		if path := filex.SQLitePath(c.DatabaseDSN); path != "" {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db init error: %w", err)
			}
		}
	}

	db, err := sql.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	if c.DatabaseDriver == repomanager.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	cs := services.NewCredentialService(db, m, c, logger)
	us := services.NewUsageService(db, m, c, logger)

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		credentials:  cs,
		usage:        us,
		grpcServer:   gs.NewGRPCServer(c.EndpointAddrGRPC, logger, cs, us, c.RequestTimeout),
		httpServer:   httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, cs, us, c.RequestTimeout, c.ShutdownTimeout),
		stopOnSignal: true,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

type runner interface {
	Run(ctx context.Context) error
}

func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until ctx is cancelled, a signal arrives or
// either server fails, then closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if app.stopOnSignal {
		app.initSignalHandler(ctx, cancelFunc)
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc", app.grpcServer)
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", app.httpServer)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
}
