package main

import (
	"context"
	"fmt"
	"os"

	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/cli"
	"go-payroll/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := cli.NewRootCommand(func(ctx context.Context) (*app.App, error) {
		return app.BuildApp(ctx, cfg, logger)
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
