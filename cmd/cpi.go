package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// cpiCmd is the top-level command for CPI series operations.
type cpiCmd struct{}

func (*cpiCmd) Name() string     { return "cpi" }
func (*cpiCmd) Synopsis() string { return "CPI series specific commands" }
func (*cpiCmd) Usage() string {
	return `cpi <subcommand> <options>

CPI series specific commands.
`
}
func (c *cpiCmd) SetFlags(f *flag.FlagSet) {}

func (c *cpiCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "cpi")
	commander.Register(&cpiFetchCmd{}, "")
	return commander.Execute(ctx, args...)
}
