package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Globals are shared by every command.
type Globals struct {
	LogLevel      string    `name:"log-level" env:"HADIANT_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level."`
	LogFormat     string    `name:"log-format" env:"HADIANT_LOG_FORMAT" default:"text" enum:"text,json" help:"Log output format."`
	Locale        string    `env:"HADIANT_LOCALE" default:"en" help:"Default locale for titles and notices (en, id)."`
	DisplayConfig string    `name:"display-config" env:"HADIANT_DISPLAY_CONFIG" type:"path" help:"YAML file overriding how settings fields are displayed."`
	Layout        string    `env:"HADIANT_LAYOUT" type:"path" help:"Layout manifest; the built-in layout is used when empty."`
	Stdout        io.Writer `kong:"-"`
}

type cli struct {
	Globals

	Serve     serveCmd   `cmd:"" help:"Serve the admin dashboard and the ops listener."`
	Tenants   tenantsCmd `cmd:"" help:"Print the tenant directory, optionally filtered."`
	Plans     plansCmd   `cmd:"" help:"Print the subscription plan catalog."`
	LayoutCmd layoutCmd  `cmd:"" name:"layout" help:"Inspect and edit layout manifests."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app cli
	app.Stdout = os.Stdout
	kctx := kong.Parse(&app,
		kong.Name("hadiant"),
		kong.Description("HADIANT multi-tenant admin dashboard."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(&app.Globals),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
