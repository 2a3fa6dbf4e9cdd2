package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/output"
	"vibelist/internal/service"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Remove all completed tasks" }
func (c *ClearCmd) Usage() string     { return "vibelist clear" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	removed := svc.ClearCompleted()
	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %s\n", output.TaskCount(removed))
	}
	return exitcode.Success
}
