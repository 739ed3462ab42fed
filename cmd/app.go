// Package cmd implements the CLI application to build inflation-adjusted
// price reports for gaming platforms.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/retroprice"
	"github.com/etnz/retroprice/fred"
	"github.com/etnz/retroprice/logging"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// Commands lists every rpp subcommand.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&adjustCmd{},
	&cpiCmd{},
	&platformsCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var debug = flag.Bool("debug", false, "enable debug logging")

// logger builds the process logger. Each run is tagged with a fresh id
// so interleaved runs can be told apart in terminal scrollback.
func logger() (*logging.Logger, error) {
	log, err := logging.New(*debug)
	if err != nil {
		return nil, err
	}
	return log.With("run", uuid.NewString()), nil
}

// cpiFlags holds the flags shared by every command that loads the CPI
// series, so that `report`, `adjust`, `cpi fetch` and `assist` all
// resolve the series the same way.
type cpiFlags struct {
	file string
	url  string
}

func (c *cpiFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.file, "cpi-file", "CPIAUCSL.txt", "Local copy of the CPI series. Downloaded there from -cpi-url when missing.")
	f.StringVar(&c.url, "cpi-url", fred.SeriesURL, "URL of the FRED CPI series.")
}

// load opens the CPI source (local file first, download otherwise) and
// parses it into the annual series.
func (c *cpiFlags) load(log *logging.Logger) (*retroprice.CPI, error) {
	r, err := fred.Open(c.file, c.url, log)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return retroprice.ParseCPI(r, log)
}

// targetYear resolves a -target-year/-to flag value the way the series
// does: zero or anything past the reference cutoff means the reference
// year itself.
func targetYear(flagValue int) int {
	if flagValue <= 0 || flagValue > retroprice.ReferenceYear {
		return retroprice.ReferenceYear
	}
	return flagValue
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to raw markdown, still readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
