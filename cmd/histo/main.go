// histo - terminal histograms with summary statistics from newline-delimited values
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arloliu/histo/errs"
)

var (
	// Version is the semantic version number, e.g. 1.0.1
	Version = "dev"
	// Build is the build date of histo
	Build string
)

// Exit codes, stable for scripting.
const (
	exitFailure    = 1
	exitEmptyInput = 2
	exitBadParse   = 3
)

var flags = NewHistogramFlags()

var rootCmd = &cobra.Command{
	Use:   "histo [file]",
	Short: "Render terminal histograms from newline-delimited values",
	Long: `histo reads newline-delimited values from stdin or a file and renders a
terminal histogram with summary statistics.

Numeric input is grouped into uniform-width bins and reported with count,
min, max, mean, standard deviation and percentiles. Mostly-textual input
flips to a categorical histogram of line frequencies. Files compressed
with gzip, zstd, s2 or lz4 are decompressed by their extension.`,
	Example: `  # Histogram of response sizes piped from a log
  awk '{print $10}' access.log | histo

  # Ten bins, strict parsing, JSON output
  histo --bins 10 --strict --json latencies.txt

  # Compressed input with tail percentiles
  histo --percentiles 50,90,99,99.9 samples.txt.gz

  # Full-screen interactive viewer
  histo -i samples.txt`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Environment variables fill in flags the user did not set.
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed && viper.IsSet(f.Name) {
				_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name)))
			}
		})
		if flags.Verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := flags.ToOptions(args)
		if err != nil {
			return err
		}

		return o.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the histo version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("histo " + Version)
		fmt.Println("Build Time: ", Build)
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	rootCmd.AddCommand(versionCmd)
	flags.AddFlags(rootCmd)

	viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("HISTO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "histo:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps failure classes to stable exit codes: 2 for input with no
// usable samples, 3 for strict-mode parse failures, 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrEmptyInput):
		return exitEmptyInput
	case errors.Is(err, errs.ErrMalformedLine):
		return exitBadParse
	default:
		return exitFailure
	}
}
