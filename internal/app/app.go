package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/filling-server/internal/config"
	"github.com/vancomm/filling-server/internal/database"
	"github.com/vancomm/filling-server/internal/middleware"
)

type App struct {
	logger     *slog.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	cookies    *config.Cookies
	jwt        *config.JWT
	ws         *config.WebSocket
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	router := http.NewServeMux()

	app := &App{
		logger:     logger,
		router:     router,
		migrations: migrations,
	}

	return app
}

func (a *App) Start(ctx context.Context) error {
	db, _, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()

	a.db = db

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}

	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}

	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}

	a.ws = ws

	a.loadRoutes()

	addr := ":8080"
	if port := config.Port(); port != "" {
		addr = ":" + port
	}

	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Auth(a.logger, cookies),
			middleware.Logging(a.logger),
		),
	}

	a.logger.Info("server listening", slog.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}
