package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"explorergen/internal"
	"explorergen/internal/config"
)

// options holds the persistent flags and what they resolve to.
type options struct {
	sourceDriver string
	sourceDir    string
	outputDir    string
	logLevel     string

	cfg    *config.Config
	logger *internal.Logger
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "explorergen",
		Short: "Generate explorer TSV files from dimension spreadsheets",
		Long: `explorergen expands the poverty and inequality dimension sheets into
explorer definitions and writes one .explorer.tsv file per explorer.

Settings come from the environment and an optional .env file.
EXPLORERGEN_CONFIG may point at a YAML file overriding explorer parameters.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.sourceDriver, "source", "", "Sheet source: gsheets|workbook (overrides SOURCE_DRIVER)")
	flags.StringVar(&opts.sourceDir, "source-dir", "", "Workbook directory (overrides SOURCE_DIR)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Directory for the file sink (overrides OUTPUT_DIR)")
	flags.StringVar(&opts.logLevel, "log-level", "", "error|warn|info|debug|trace (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newListCmd(opts),
		newSnapshotCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

func (o *options) load() error {
	// .env is optional
	_ = godotenv.Load()

	overrides := map[string]string{
		"SOURCE_DRIVER": o.sourceDriver,
		"SOURCE_DIR":    o.sourceDir,
		"OUTPUT_DIR":    o.outputDir,
		"LOG_LEVEL":     o.logLevel,
	}
	for key, value := range overrides {
		if value != "" {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	o.logger = internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}
