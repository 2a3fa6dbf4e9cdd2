// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"vibelist/internal/commands"
	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/service"
)

// ServiceFactory opens the task list described by cfg. Storage warnings are
// written to logger. The returned closer, if non-nil, is called once the
// command has finished.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, io.Closer, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var (
		configDir string
		backend   string
		quiet     bool
		debug     bool
	)
	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&backend, "backend", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", describeFlagError(err))
		return exitcode.UserError
	}

	// A positional arg that still looks like a flag was not recognised
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %v\n", err)
		return exitcode.StorageError
	}
	if err := cfg.SetBackend(backend); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = cfg.Debug || debug

	logger := log.New(errOut, "", 0)
	debugLog := log.New(io.Discard, "", 0)
	if cfg.Debug {
		debugLog = log.New(errOut, "debug: ", 0)
	}
	debugLog.Printf("config dir %s, backend %s, data dir %s, key %s", cfg.Dir, cfg.Backend, cfg.DataDir, cfg.StorageKey)

	var svc service.Service
	if cmd.NeedsStore() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no storage configured")
			return exitcode.StorageError
		}
		var closer io.Closer
		svc, closer, err = d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
		if closer != nil {
			defer func() {
				if err := closer.Close(); err != nil {
					logger.Printf("warning: close storage: %v", err)
				}
			}()
		}
		debugLog.Printf("loaded %d tasks", len(svc.All()))
	}

	debugLog.Printf("running %s", cmd.Name())
	return cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
}

// describeFlagError rewrites flag package errors into the CLI's wording.
func describeFlagError(err error) string {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + flagName
	}
	return errStr
}
