package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/retroprice"
	"github.com/etnz/retroprice/giantbomb"
	"github.com/etnz/retroprice/renderer"
	"github.com/google/subcommands"
)

// platformsCmd holds the flags for the 'platforms' subcommand.
type platformsCmd struct {
	limit int
}

func (*platformsCmd) Name() string { return "platforms" }
func (*platformsCmd) Synopsis() string {
	return "list the raw Giantbomb platform catalog"
}
func (*platformsCmd) Usage() string {
	return `rpp platforms [-limit <n>]

  Lists the platform catalog as received from Giantbomb, before any
  filtering or price adjustment.
`
}

func (c *platformsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "Number of records to list. 0 means all of them.")
}

func (c *platformsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, err := logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	gb := giantbomb.NewClient(giantbomb.APIKey(), log)

	var platforms []retroprice.Platform
	for p, err := range gb.Platforms(c.limit) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching platforms: %v\n", err)
			return subcommands.ExitFailure
		}
		platforms = append(platforms, p)
	}

	printMarkdown(renderer.PlatformsMarkdown(platforms))
	return subcommands.ExitSuccess
}
