package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/edareport/internal/config"
	"github.com/KaramelBytes/edareport/internal/dataset"
	"github.com/KaramelBytes/edareport/internal/logging"
	"github.com/KaramelBytes/edareport/internal/report"
)

var (
	// Global flags
	cfgFile   string
	debug     bool
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Global

	// Per-run logger, tagged with a run id
	log logrus.FieldLogger = logrus.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "edareport",
	Short: "edareport: exploratory data analysis report for a CSV file",
	Long: `edareport loads a tabular dataset, checks it for missing values, duplicate and
constant columns, renders boxplots and distribution plots, and writes a static
HTML report that embeds them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		format := c.LogFormat
		if logFormat != "" {
			format = logFormat
		}
		l, err := logging.New(logging.Options{
			Level:  c.LogLevel,
			Format: format,
			Debug:  debug,
			Out:    cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		log = l.WithField("run", uuid.NewString())
		return nil
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix(err), err)
		os.Exit(1)
	}
}

// errorPrefix labels err by its class so input problems, bad arguments and
// filesystem failures read differently on the console.
func errorPrefix(err error) string {
	var inputErr *dataset.InputFormatError
	var colErr *report.MissingColumnError
	var fsErr *report.FilesystemError
	switch {
	case errors.As(err, &inputErr):
		return "✗ Input error:"
	case errors.As(err, &colErr):
		return "✗ Column error:"
	case errors.As(err, &fsErr):
		return "✗ Filesystem error:"
	default:
		return "✗ Error:"
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/edareport/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text | json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration or built-in defaults.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		Output:            report.DefaultOutput,
		DistributionCount: report.DefaultDistributionCount,
		ImageWidth:        report.DefaultImageWidth,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}
