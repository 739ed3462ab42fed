package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/retroprice/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the rpp command line for shell completion.
// Running `COMP_INSTALL=1 rpp` once installs it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"report": {Flags: map[string]complete.Predictor{
			"cpi-file":    predict.Files("*.txt"),
			"cpi-url":     predict.Something,
			"csv-file":    predict.Files("*.csv"),
			"chart-file":  predict.Files("*.png"),
			"chart-font":  predict.Files("*.ttf"),
			"limit":       predict.Something,
			"target-year": predict.Something,
		}},
		"adjust": {Flags: map[string]complete.Predictor{
			"cpi-file": predict.Files("*.txt"),
			"cpi-url":  predict.Something,
			"price":    predict.Something,
			"year":     predict.Something,
			"to":       predict.Something,
		}},
		"cpi": {Sub: map[string]*complete.Command{
			"fetch": {Flags: map[string]complete.Predictor{
				"cpi-file": predict.Files("*.txt"),
				"cpi-url":  predict.Something,
			}},
		}},
		"platforms": {Flags: map[string]complete.Predictor{
			"limit": predict.Something,
		}},
		"assist": {Flags: map[string]complete.Predictor{
			"cpi-file": predict.Files("*.txt"),
			"cpi-url":  predict.Something,
		}},
		"topic": {Args: predict.Set{"readme", "adjust", "assist", "cpi", "giantbomb", "report"}},
	},
	Flags: map[string]complete.Predictor{
		"debug":             predict.Nothing,
		"giantbomb-api-key": predict.Something,
	},
}

func main() {
	completion.Complete("rpp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
