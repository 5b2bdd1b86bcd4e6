package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iburimskiy/ink-intro/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
