package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"explorergen/adapters/gsheets"
	"explorergen/adapters/sink"
	"explorergen/adapters/workbook"
	"explorergen/app"
	"explorergen/internal/explorers"
	"explorergen/internal/explorers/common"
	"explorergen/internal/metrics"
	"explorergen/ports"
	"explorergen/ui"
)

func (o *options) registry() *explorers.Registry {
	return explorers.Default(common.Defaults().WithOverrides(o.cfg.Params))
}

func (o *options) source() ports.SheetSource {
	if o.cfg.Source.Driver == "workbook" {
		return workbook.NewReader(o.cfg.Source.Dir, o.logger)
	}
	return gsheets.NewReader(gsheets.Config{
		BaseURL: o.cfg.Source.BaseURL,
		Format:  o.cfg.Source.Format,
		Timeout: o.cfg.Source.Timeout,
	}, o.logger)
}

func (o *options) sink(ctx context.Context) (ports.ExplorerSink, error) {
	out := o.cfg.Output
	if out.Driver == "s3" {
		s3, err := sink.NewS3Sink(ctx, sink.S3Config{
			Bucket:          out.Bucket,
			Prefix:          out.Prefix,
			Region:          out.Region,
			Endpoint:        out.Endpoint,
			PathStyle:       out.PathStyle,
			AccessKeyID:     out.AccessKeyID,
			SecretAccessKey: out.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return s3, nil
	}
	return sink.NewFileSink(out.Dir), nil
}

// names falls back to the configured explorer list, which may itself be
// empty to mean every explorer.
func (o *options) names(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return o.cfg.Generation.Explorers
}

func (o *options) service(out ports.ExplorerSink, recorder *metrics.Recorder) *app.GeneratorService {
	return app.NewGeneratorService(o.registry(), o.source(), out, recorder, o.logger, o.cfg.Generation.Parallelism)
}

func printReport(cmd *cobra.Command, report *app.RunReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXPLORER\tGRAPHERS\tTABLES\tCOLUMNS\tBYTES\tLOCATION")
	for _, r := range report.Explorers {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n", r.Name, r.GrapherRows, r.TableBlocks, r.ColumnRows, r.Bytes, r.Location)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d sheets in %v\n", report.RunID, report.SheetsFetched, report.Duration)
	return nil
}

func newGenerateCmd(o *options) *cobra.Command {
	var metricsFile string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate [explorers...]",
		Short: "Build explorers and write them to the configured sink",
		Long: `Build the named explorers, or all of them, and write one file each.

Example: explorergen generate lis-inequality --output-dir ./explorers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out, err := o.sink(ctx)
			if err != nil {
				return err
			}
			recorder := metrics.NewRecorder()

			report, err := o.service(out, recorder).Generate(ctx, o.names(args)...)

			if metricsFile == "" {
				metricsFile = o.cfg.Generation.MetricsFile
			}
			if metricsFile != "" {
				if werr := recorder.WriteToTextfile(metricsFile); werr != nil {
					o.logger.Warn("[CLI] Could not write metrics to %s: %v", metricsFile, werr)
				}
			}
			if err != nil {
				return err
			}
			return printReport(cmd, report, asJSON)
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run report as JSON")

	return cmd
}

func newCheckCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [explorers...]",
		Short: "Build and validate explorers without writing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := o.service(nil, nil).Check(cmd.Context(), o.names(args)...)
			if err != nil {
				return err
			}
			return printReport(cmd, report, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run report as JSON")

	return cmd
}

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List explorers and the sheets each one reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := o.registry()
			for _, name := range registry.Names() {
				b, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				for _, ref := range b.Sheets() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ref)
				}
			}
			return nil
		},
	}
}

func newSnapshotCmd(o *options) *cobra.Command {
	var dir, layout string

	cmd := &cobra.Command{
		Use:   "snapshot [explorers...]",
		Short: "Download dimension sheets for offline runs",
		Long: `Fetch every sheet the named explorers read and store it under --dir.

Replay with: explorergen generate --source workbook --source-dir <dir>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer, err := workbook.NewSnapshotWriter(dir, layout)
			if err != nil {
				return err
			}
			sheets, err := o.service(nil, nil).Sheets(cmd.Context(), o.names(args)...)
			if err != nil {
				return err
			}
			paths, err := writer.Write(sheets)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./sheets", "Snapshot directory")
	cmd.Flags().StringVar(&layout, "layout", workbook.LayoutXLSX, "Snapshot layout: xlsx|csv")

	return cmd
}

func newServeCmd(o *options) *cobra.Command {
	var port string
	var warm bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve explorers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if port == "" {
				port = o.cfg.Server.Port
			}
			registry := o.registry()
			store := sink.NewMemorySink()
			recorder := metrics.NewRecorder()
			svc := app.NewGeneratorService(registry, o.source(), store, recorder, o.logger, o.cfg.Generation.Parallelism)

			if warm {
				if _, err := svc.Generate(ctx, o.cfg.Generation.Explorers...); err != nil {
					return err
				}
			}

			server := ui.NewApp(ui.Config{Port: port}, svc, registry, store, recorder, o.logger)
			return server.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	cmd.Flags().BoolVar(&warm, "warm", false, "Generate the configured explorers before serving")

	return cmd
}
