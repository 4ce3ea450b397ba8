package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"resource_api/internal/handlers"
	"resource_api/internal/repository"
	"resource_api/internal/server"
	"resource_api/internal/service"

	_ "resource_api/docs" // registers the swagger spec

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := a.openDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to init sqlite: %w", err)
	}
	defer a.closeDB(conn)

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{MaxListLimit: a.cfg.MaxLimit})
	apiHandler := handlers.NewHandler(services, a.log, handlers.Config{
		Realm:        a.cfg.Realm,
		DefaultLimit: a.cfg.DefaultLimit,
	})

	srv := server.New(server.Config{
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout,
		WriteTimeout:      a.cfg.WriteTimeout,
		IdleTimeout:       a.cfg.IdleTimeout,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infow("http server listening", "port", a.cfg.Port)
		if err := srv.Run(a.cfg.Port, apiHandler.InitRoutes()); err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Infow("shutting down server...")

		// allow in-flight requests to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
