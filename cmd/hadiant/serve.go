package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/chirouter"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/gorouter"
	"github.com/hadiant/go-admin-dashboard/pkg/goadmin"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	Addr    string `env:"HADIANT_ADDR" default:":8080" help:"Address of the admin UI."`
	OpsAddr string `name:"ops-addr" env:"HADIANT_OPS_ADDR" default:":9090" help:"Address of the JSON API, notice streams and /metrics."`
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	app, err := newApplication(g, os.Stderr)
	if err != nil {
		return err
	}

	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("serve: template renderer: %w", err)
	}
	controller := dashboard.NewController(dashboard.ControllerOptions{
		Service:  app.service,
		Renderer: renderer,
	})

	menu := goadmin.NewMemoryMenu()
	admin, err := goadmin.New(goadmin.Config{
		EnableDashboard: true,
		Service:         app.service,
		MenuBuilder:     menu,
		Locale:          g.Locale,
	})
	if err != nil {
		return err
	}
	if err := admin.Bootstrap(ctx); err != nil {
		return err
	}
	for _, item := range menu.Items("admin.main") {
		app.logger.Debug("menu item", "label", item.Label, "route", item.Route, "position", item.Position)
	}

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: controller,
		API:        app.api,
		Notices:    app.notices,
	}); err != nil {
		return fmt.Errorf("serve: register routes: %w", err)
	}

	ops := &http.Server{
		Addr: cmd.OpsAddr,
		Handler: chirouter.NewRouter(chirouter.Config{
			API:      app.api,
			Notices:  app.notices,
			Gatherer: app.registry,
			Logger:   app.logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 2)
	go func() {
		app.logger.Info("admin ui listening", "addr", cmd.Addr, "url", "http://localhost"+cmd.Addr+dashboard.PageDashboard.Route())
		errs <- server.Serve(cmd.Addr)
	}()
	go func() {
		app.logger.Info("ops listener", "addr", cmd.OpsAddr)
		if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
			return
		}
		errs <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-errs:
		if err != nil {
			app.logger.Error("listener failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.logger.Info("shutting down")
	return errors.Join(
		ops.Shutdown(shutdownCtx),
		server.Shutdown(shutdownCtx),
	)
}
