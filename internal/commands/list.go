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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `vibelist` (no args) and `vibelist list`.
type ListCmd struct {
	verbose bool
}

// SetVerbose sets the verbose flag (for testing).
func (c *ListCmd) SetVerbose(v bool) {
	c.verbose = v
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, newest first" }
func (c *ListCmd) Usage() string     { return "vibelist list [--ids]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "ids", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	snap := svc.Snapshot()
	if snap.Empty() {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.EmptyState)
		}
		return exitcode.Success
	}

	for i, task := range snap.Tasks {
		if c.verbose {
			output.FormatTaskVerbose(out, i+1, task)
		} else {
			output.FormatTask(out, i+1, task)
		}
	}
	output.FormatRemaining(out, snap.Remaining)

	if snap.HasCompleted && !cfg.Quiet {
		fmt.Fprintln(out, output.ClearHint)
	}
	return exitcode.Success
}
