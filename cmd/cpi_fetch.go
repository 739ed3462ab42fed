package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// cpiFetchCmd implements the "cpi fetch" command.
type cpiFetchCmd struct {
	cpi cpiFlags
}

func (*cpiFetchCmd) Name() string     { return "fetch" }
func (*cpiFetchCmd) Synopsis() string { return "download and cache the CPI series" }
func (*cpiFetchCmd) Usage() string {
	return `cpi fetch:

Downloads the CPI series from FRED unless the local file already has
it, and prints the bounds of the parsed series.
`
}

func (c *cpiFetchCmd) SetFlags(f *flag.FlagSet) { c.cpi.register(f) }

func (c *cpiFetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, err := logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	series, err := c.cpi.load(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading CPI series: %v\n", err)
		return subcommands.ExitFailure
	}

	first, last, ok := series.Bounds()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: the CPI series at %q has no observations\n", c.cpi.file)
		return subcommands.ExitFailure
	}

	fmt.Printf("CPI series: %d annual averages covering %d to %d.\n", series.Len(), first, last)
	return subcommands.ExitSuccess
}
