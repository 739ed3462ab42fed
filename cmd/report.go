package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/retroprice"
	"github.com/etnz/retroprice/chart"
	"github.com/etnz/retroprice/giantbomb"
	"github.com/etnz/retroprice/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	cpi        cpiFlags
	csvFile    string
	chartFile  string
	chartFont  string
	limit      int
	targetYear int
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "generate the inflation-adjusted launch price report"
}
func (*reportCmd) Usage() string {
	return `rpp report -csv-file <file> | -chart-file <file> [options]

  Fetches the Giantbomb platform catalog, restates every launch price
  in target-year dollars using the FRED CPI series, and writes a CSV
  table and/or a PNG bar chart. A markdown summary is printed to the
  terminal. At least one of -csv-file and -chart-file is required.

Usage Examples:
# Both outputs, first ten platforms only.
$ rpp report -csv-file prices.csv -chart-file prices.png -limit 10

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.cpi.register(f)
	f.StringVar(&c.csvFile, "csv-file", "", "CSV file to generate.")
	f.StringVar(&c.chartFile, "chart-file", "", "PNG bar chart to generate.")
	f.StringVar(&c.chartFont, "chart-font", "", "TrueType font file for the chart labels. Uses a built-in face by default.")
	f.IntVar(&c.limit, "limit", 0, "Number of platforms to report on. 0 means all of them.")
	f.IntVar(&c.targetYear, "target-year", 0, "Year whose dollars prices are restated in. 0 means the 2013 reference year.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" && c.chartFile == "" {
		fmt.Fprintf(os.Stderr, "Error: you have to specify at least one of -csv-file or -chart-file\n")
		return subcommands.ExitUsageError
	}

	log, err := logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	fmt.Printf("Disclaimer: this report uses data provided by FRED, Federal Reserve"+
		" Economic Data, from the Federal Reserve Bank of St. Louis"+
		" and Giantbomb.com:\n- %s\n- https://www.giantbomb.com/api/\n\n", c.cpi.url)

	series, err := c.cpi.load(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading CPI series: %v\n", err)
		return subcommands.ExitFailure
	}

	adjuster := retroprice.NewAdjuster(series, log)
	adjuster.Limit = c.limit
	adjuster.TargetYear = c.targetYear

	gb := giantbomb.NewClient(giantbomb.APIKey(), log)
	platforms, err := adjuster.Process(gb.Platforms(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.chartFile != "" {
		if err := c.writeChart(platforms); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.chartFile, err)
			return subcommands.ExitFailure
		}
	}
	if c.csvFile != "" {
		if err := c.writeCSV(platforms); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV %q: %v\n", c.csvFile, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SummaryMarkdown(platforms, targetYear(c.targetYear)))
	log.Info("report complete", "platforms", len(platforms), "skipped", adjuster.Filter.Skipped())
	return subcommands.ExitSuccess
}

func (c *reportCmd) writeChart(platforms []retroprice.AdjustedPlatform) error {
	w, err := os.Create(c.chartFile)
	if err != nil {
		return err
	}
	ch := chart.Chart{FontFile: c.chartFont}
	if err := ch.Render(w, platforms); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (c *reportCmd) writeCSV(platforms []retroprice.AdjustedPlatform) error {
	w, err := os.Create(c.csvFile)
	if err != nil {
		return err
	}
	if err := renderer.WriteCSV(w, platforms); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
