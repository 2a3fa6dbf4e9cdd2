package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command. It marks an open task completed
// and a completed task open again.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Mark a task completed or open" }
func (c *ToggleCmd) Usage() string     { return "vibelist toggle <ref>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, code := resolveArgs(svc, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if _, ok := svc.Toggle(task.ID); !ok {
		fmt.Fprintf(errOut, "error: task not found: %s\n", task.ID)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
