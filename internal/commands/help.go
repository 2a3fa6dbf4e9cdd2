package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd creates a help command listing the commands in r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "vibelist help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, c.text())
	return exitcode.Success
}

func (c *HelpCmd) text() string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %-30s %s\n", "vibelist", "List tasks (same as list)")
	for _, cmd := range c.registry.All() {
		usage := cmd.Usage()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			usage += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(&b, "  %-30s %s\n", usage, cmd.Synopsis())
	}
	b.WriteString(commonFlagsText)
	return b.String()
}

const commonFlagsText = `
<ref> is a task number from the listing or a task id (list --ids).

Common flags:
  --config <dir>     Override config directory
  --backend <name>   Storage backend: file, sqlite or memory
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
