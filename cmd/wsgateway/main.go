package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/wsgateway/internal/config"
	"github.com/polkiloo/wsgateway/internal/di"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initConfig(os.Args[2:])
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(),
	)

	run(ctx, app)
}

func initConfig(args []string) {
	path, created, err := config.Init(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
		os.Exit(1)
	}
	if !created {
		fmt.Printf("config %s already exists, left untouched\n", path)
		return
	}
	fmt.Printf("wrote default config to %s\n", path)
}
