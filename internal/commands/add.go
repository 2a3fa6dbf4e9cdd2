package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "vibelist add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	_, err := svc.Add(strings.Join(args, " "))
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			fmt.Fprintln(errOut, "error: task text required")
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
