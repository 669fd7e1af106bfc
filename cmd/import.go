package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/store"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// NewImportCommand creates new command instance
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Args:  cobra.ExactArgs(1),
		Short: "imports analysis records into the store",
		Long: `Reads a stream of JSON encoded analysis records, one object per record,
and persists them in the configured store.`,
		RunE: runImport,
	}
}

func runImport(_ *cobra.Command, args []string) error {
	logger := log.PrefixedLog("import_cmd")

	file, err := os.Open(args[0])
	if err != nil {
		return newStatusError(ExitFatal, fmt.Errorf("can't read import file: %w", err))
	}
	defer file.Close()

	analysisStore, err := store.New(&cfg.Store)
	if err != nil {
		return newStatusError(ExitFatal, err)
	}
	defer analysisStore.Close()

	var (
		imported   int
		importErrs *multierror.Error
	)

	decoder := json.NewDecoder(file)

	for {
		var record model.AnalysisRecord

		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return newStatusError(ExitFatal, fmt.Errorf("malformed import file: %w", err))
		}

		name, err := model.NewDomainName(record.Name.String())
		if err != nil {
			importErrs = multierror.Append(importErrs, fmt.Errorf("record %d: %w", imported+1, err))

			continue
		}

		record.Name = name

		if err := analysisStore.Insert(context.Background(), &record); err != nil {
			importErrs = multierror.Append(importErrs, err)

			continue
		}

		imported++
	}

	if err := importErrs.ErrorOrNil(); err != nil {
		logger.Warnf("some records were skipped: %s", err)
	}

	logger.Infof("imported %d analysis records", imported)

	if imported == 0 {
		return newStatusError(ExitNoResults, errors.New("no records imported"))
	}

	return nil
}
