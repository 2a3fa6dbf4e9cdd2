// Package main is the entry point for the vibelist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vibelist/internal/cli"
	"vibelist/internal/commands"
)

func main() {
	// Cancel the context on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.OpenTaskList)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
