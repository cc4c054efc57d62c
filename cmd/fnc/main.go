package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"savantfnc/adapters/api"
	"savantfnc/adapters/excel"
	genadapter "savantfnc/adapters/genetics"
	"savantfnc/adapters/viz"
	"savantfnc/app"
	"savantfnc/domain/genetics"
	"savantfnc/internal"
	"savantfnc/internal/config"
	"savantfnc/internal/errors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("no .env file found, using system environment")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		all        bool
		vizStage   bool
		stats      bool
		geneticsOn bool
		ai         bool
		report     bool
		output     string
		reportFile string
	)

	cmd := &cobra.Command{
		Use:   "fnc",
		Short: "Savant-FNC analysis pipeline",
		Long: `Run the Savant-FNC analyses: statistics, genetics, machine response
scoring, figures, and the consolidated report. With no stage flag every
stage runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(output, reportFile)
			if err != nil {
				return err
			}
			log := internal.NewDefaultLogger()
			pipeline := app.NewPipeline(cfg, viz.NewRenderer(cfg), log)

			sel := app.Selection{
				Viz:      vizStage || all,
				Stats:    stats || all,
				Genetics: geneticsOn || all,
				AI:       ai || all,
				Report:   report || all,
			}
			result, err := pipeline.Run(cmd.Context(), sel)
			if err != nil {
				return err
			}

			if n := len(result.Figures); n > 0 {
				fmt.Printf("Figures: %d written to %s\n", n, cfg.Output.Dir)
			}
			for _, path := range []string{result.StatsPath, result.ReportPath, result.JSONPath, result.WorkbookPath} {
				if path != "" {
					fmt.Printf("Wrote %s\n", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Run every stage")
	cmd.Flags().BoolVar(&vizStage, "viz", false, "Render figures")
	cmd.Flags().BoolVar(&stats, "stats", false, "Run statistical analyses")
	cmd.Flags().BoolVar(&geneticsOn, "genetics", false, "Run genetic analyses")
	cmd.Flags().BoolVar(&ai, "ai", false, "Run machine response comparison")
	cmd.Flags().BoolVar(&report, "report", false, "Write the consolidated report (pulls in stats, genetics, ai)")
	cmd.Flags().StringVar(&output, "output", "", "Output directory for figures and reports")
	cmd.Flags().StringVar(&reportFile, "report-file", "", "Markdown report filename")

	cmd.AddCommand(
		newServeCmd(),
		newAnnotateCmd(),
	)
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	var output string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis report over HTTP",
		Long: `Serve the generated report, its JSON form, and the figures from the
output directory. Shuts down cleanly on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(output, "")
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(cfg, internal.NewDefaultLogger())
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from FNC_SERVE_ADDR or :8080)")
	cmd.Flags().StringVar(&output, "output", "", "Output directory the report was written to")
	return cmd
}

func newAnnotateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "annotate [variant-file]",
		Short: "Annotate a variant call file against the tuning gene catalog",
		Long: `Read a VCF, CSV, or XLSX variant table, annotate each call against the
candidate gene catalog, and summarize the tuning-relevant survivors.

Example: fnc annotate exomes.vcf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("", "")
			if err != nil {
				return err
			}
			variants, err := readVariantFile(args[0])
			if err != nil {
				return err
			}
			report := genadapter.BuildVariantReport(cfg.Genetics, variants)

			if asJSON {
				return printJSON(report)
			}
			printVariantReport(args[0], report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func loadConfig(outputDir, reportFile string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if reportFile != "" {
		cfg.Output.ReportFile = reportFile
	}
	return cfg, nil
}

func readVariantFile(path string) ([]genetics.AnnotatedVariant, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".vcf":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open variant file")
		}
		defer f.Close()
		return genadapter.ParseVCF(f)
	case ".csv", ".xlsx":
		return excel.ReadVariants(path)
	default:
		return nil, errors.Newf(errors.CodeInvalidInput, "unsupported variant file format %q", ext)
	}
}

func printVariantReport(path string, report genadapter.VariantReport) {
	fmt.Printf("Variant call: %s\n", path)
	fmt.Printf("Screened: %d variants, %d tuning-relevant\n", report.Total, report.Relevant)

	if report.Relevant == 0 {
		fmt.Println(report.Interpretation)
		return
	}

	fmt.Println()
	for _, cat := range genetics.VariantCategories() {
		lines := report.ByCategory[cat.Name]
		if len(lines) == 0 {
			continue
		}
		fmt.Printf("%s (%d):\n", cat.Name, len(lines))
		for _, line := range lines {
			fmt.Printf("  %s  %s  %s  %s\n", line.Variant, line.Gene, line.Consequence, line.Impact)
		}
	}

	fmt.Println()
	for _, prediction := range report.Predictions {
		fmt.Printf("- %s\n", prediction)
	}
	fmt.Println()
	fmt.Println(report.Interpretation)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	fmt.Println(string(data))
	return nil
}
