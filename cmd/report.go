package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnsvet/dnsvet/anchors"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/metrics"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/report"
	"github.com/dnsvet/dnsvet/stats"
	"github.com/dnsvet/dnsvet/store"
	"github.com/dnsvet/dnsvet/validate"

	"github.com/spf13/cobra"
)

// NewReportCommand creates new command instance
func NewReportCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "report [names...]",
		Short: "generates the status report for the requested names",
		Long: `Loads the most recent analysis record of each requested name plus all
records it depends on, computes the DNSSEC validation status and writes
the results as an ordered JSON document.

Names are given either as arguments or, one per line, in a file.`,
		RunE: runReport,
	}

	c.Flags().StringP("file", "f", "", "read names from file, one per line")
	c.Flags().StringP("anchors", "a", "", "trust anchor file (DNSKEY/DS records in zone file format)")
	c.Flags().StringP("output", "o", "", "write the document to this file instead of stdout")
	c.Flags().BoolP("pretty", "p", false, "indented document output")
	c.Flags().String("metrics-file", "", "write run metrics in prometheus text format to this file")

	return c
}

//nolint:funlen
func runReport(cmd *cobra.Command, args []string) error {
	logger := log.PrefixedLog("report_cmd")

	namesFile, _ := cmd.Flags().GetString("file")

	names, err := requestedNames(namesFile, args)
	if err != nil {
		return err
	}

	anchorsFile, _ := cmd.Flags().GetString("anchors")

	anchorSet, err := loadAnchors(anchorsFile)
	if err != nil {
		return newStatusError(ExitFatal, err)
	}

	// the output destination is a run-defining input, an unusable one
	// aborts before any record is loaded
	output, _ := cmd.Flags().GetString("output")

	var out io.Writer = os.Stdout

	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return newStatusError(ExitFatal, fmt.Errorf("can't create output file '%s': %w", output, err))
		}
		defer file.Close()

		out = file
	}

	analysisStore, err := store.New(&cfg.Store)
	if err != nil {
		return newStatusError(ExitFatal, err)
	}
	defer analysisStore.Close()

	metrics.RegisterEventListeners()

	collector := stats.NewCollector()
	defer collector.Unsubscribe()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	document, err := report.NewRunner(analysisStore, validate.NewChainEngine(), anchorSet).Run(ctx, names)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return newStatusError(ExitInterrupted, errors.New("interrupted, no output written"))
		}

		return newStatusError(ExitFatal, err)
	}

	if document.Len() == 0 {
		return newStatusError(ExitNoResults, errors.New("no usable results produced"))
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	if !cmd.Flags().Changed("pretty") {
		pretty = cfg.Report.Pretty
	}

	if err := document.Write(out, pretty); err != nil {
		return newStatusError(ExitFatal, err)
	}

	collector.LogSummary(logger)

	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	if metricsFile == "" {
		metricsFile = cfg.Report.MetricsFile
	}

	if metricsFile != "" {
		if err := metrics.WriteToFile(metricsFile); err != nil {
			logger.Warnf("can't write metrics file: %s", err)
		}
	}

	return nil
}

// requestedNames returns the normalized, de-duplicated names in input
// order, from the file or the arguments, mutually exclusive
func requestedNames(namesFile string, args []string) ([]model.DomainName, error) {
	if namesFile != "" && len(args) > 0 {
		return nil, errors.New("names are given either as arguments or with --file, not both")
	}

	if namesFile == "" && len(args) == 0 {
		return nil, errors.New("no names given, use arguments or --file")
	}

	if namesFile != "" {
		names, err := report.ReadNamesFile(namesFile)
		if err != nil {
			return nil, newStatusError(ExitFatal, err)
		}

		return names, nil
	}

	return report.ParseNames(args), nil
}

func loadAnchors(path string) (*anchors.Set, error) {
	if path == "" {
		return anchors.NewSet(), nil
	}

	return anchors.FromFile(path)
}
