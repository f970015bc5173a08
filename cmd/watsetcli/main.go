// Command watsetcli clusters a weighted edge list with the Watset
// meta-algorithm and prints the resulting fuzzy clusters as YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/senseweave/watset/cmd/watsetcli/internal/config"
	"github.com/senseweave/watset/cmd/watsetcli/internal/logging"
	"github.com/senseweave/watset/cmd/watsetcli/internal/report"
	"github.com/senseweave/watset/cmd/watsetcli/internal/run"
)

func main() {
	var cfgFile string
	var opts config.Options

	root := &cobra.Command{
		Use:   "watsetcli <edges.csv>",
		Short: "Cluster a weighted edge list with MaxMax/Watset",
		Long: "watsetcli reads a CSV edge list (from,to,weight) and runs the Watset\n" +
			"fuzzy graph-clustering meta-algorithm over it, printing the resulting\n" +
			"clusters (one item may appear in more than one) as YAML.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.Load(cfgFile, opts)
			if err != nil {
				return fmt.Errorf("watsetcli: config: %w", err)
			}

			logger := logging.New(resolved.LogLevel, resolved.LogFormat)

			result, err := run.Cluster(cmd.Context(), args[0], resolved, logger)
			if err != nil {
				return fmt.Errorf("watsetcli: %w", err)
			}

			return report.WriteYAML(os.Stdout, result)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file (keys it sets override the flags)")
	flags.StringVar(&opts.LocalAlgorithm, "local", "together", "local clusterer for sense induction: together|maxmax")
	flags.StringVar(&opts.GlobalAlgorithm, "global", "together", "global clusterer over the sense graph: together|maxmax")
	flags.Float64Var(&opts.SelfWeight, "self-weight", 1.0, "self-weight constant used when disambiguating a sense's own context")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug|info|warn|error")
	flags.StringVar(&opts.LogFormat, "log-format", "auto", "log format: auto|console|json")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
