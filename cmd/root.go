package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/dnsvet/dnsvet/config"
	"github.com/dnsvet/dnsvet/log"

	"github.com/spf13/cobra"
)

// Exit codes of the application. Usage errors are reported by cobra and
// mapped to ExitUsage in Execute.
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitNoResults   = 2
	ExitFatal       = 3
	ExitInterrupted = 4
)

//nolint:gochecknoglobals
var (
	version   = "undefined"
	buildTime = "undefined"

	configPath string
	cfg        *config.Config

	logLevel     string
	logFormat    string
	logTimestamp bool
)

// statusError carries a dedicated exit code through cobra's RunE chain
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func newStatusError(code int, err error) *statusError {
	return &statusError{code: code, err: err}
}

// NewRootCommand creates a new root command instance
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "dnsvet",
		Short: "dnsvet generates DNSSEC status reports from stored analysis records",
		Long: `dnsvet loads previously computed DNS/DNSSEC analysis records from a store,
expands their dependency graphs and evaluates the validation status of each
requested name against a set of trust anchors.

Exit codes: 0 success, 1 usage error, 2 no usable results,
3 fatal I/O or configuration error, 4 interrupted.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", "./dnsvet.yml", "path to config file")
	c.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (info, trace, debug, warn, error, fatal)")
	c.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	c.PersistentFlags().BoolVar(&logTimestamp, "log-timestamp", true, "log timestamps")

	c.AddCommand(
		NewReportCommand(),
		NewImportCommand(),
		NewVersionCommand(),
	)

	return c
}

func initConfig(cmd *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.LoadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return newStatusError(ExitFatal, err)
	}

	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return newStatusError(ExitFatal, err)
		}

		cfg.Log.Level = level
	}

	if logFormat != "" {
		format, err := log.ParseFormatType(logFormat)
		if err != nil {
			return newStatusError(ExitFatal, err)
		}

		cfg.Log.Format = format
	}

	if cmd.Flags().Changed("log-timestamp") {
		cfg.Log.Timestamp = logTimestamp
	}

	log.ConfigureLogger(cfg.Log)

	return nil
}

// Execute runs the root command and terminates the process with the
// documented exit code
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			log.Log().Error(statusErr.Error())
			os.Exit(statusErr.code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
}
