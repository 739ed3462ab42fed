package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/retroprice"
	"github.com/google/subcommands"
)

// adjustCmd holds the flags for the 'adjust' subcommand.
type adjustCmd struct {
	cpi   cpiFlags
	price float64
	year  int
	to    int
}

func (*adjustCmd) Name() string { return "adjust" }
func (*adjustCmd) Synopsis() string {
	return "restate a price from one year in the dollars of another"
}
func (*adjustCmd) Usage() string {
	return `rpp adjust -price <amount> -year <year> [-to <year>]

  Restates a price observed in one year in the dollars of another,
  using the ratio of annual CPI averages. Years outside the series are
  clamped to its bounds. Prints the adjusted amount.

Usage Examples:
# What would a 299 dollar console from 1995 cost in 2013 dollars?
$ rpp adjust -price 299 -year 1995

`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	c.cpi.register(f)
	f.Float64Var(&c.price, "price", 0, "Price to restate, in dollars.")
	f.IntVar(&c.year, "year", 0, "Year the price was observed. Required.")
	f.IntVar(&c.to, "to", 0, "Year whose dollars to restate the price in. 0 means the 2013 reference year.")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == 0 {
		fmt.Fprintf(os.Stderr, "Error: -year is required\n")
		return subcommands.ExitUsageError
	}

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

	adjusted, err := series.AdjustedPrice(retroprice.USD(c.price), c.year, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adjusting price: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(adjusted)
	return subcommands.ExitSuccess
}
