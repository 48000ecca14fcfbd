package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cxconfig "github.com/msto63/chronox/foundation/core/config"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	cxlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/foundation/utils/timex"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // configuration or internal failure
	ExitCommandError = 2 // bad arguments or input
)

// EnvPrefix prefixes environment overrides, e.g. CHRONOX_TIME_TIMEZONE
const EnvPrefix = "CHRONOX"

// RootOptions holds global flags and the state prepared for every command.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
	LogFormat  string

	config    *cxconfig.Config
	logger    *cxlog.Logger
	requestID string
}

// configDefaults are applied beneath the config file and the environment
var configDefaults = map[string]interface{}{
	"time.chunk_interval": "1 day",
	"log.level":           "warn",
	"log.format":          "text",
	"output.style":        "plain",
}

// Execute runs the chronox CLI and returns the process exit code
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the CLI with explicit arguments and writers
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	if opts.logger != nil {
		opts.logger.Debug("command failed",
			cxlog.Err(err),
			cxlog.String("error_code", cxerror.GetCode(err).String()))
	}
	printError(stderr, err)
	return ExitCode(err)
}

// NewRootCommand creates the root command for the chronox CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronox",
		Short: "chronox - epoch timestamps, time ranges and nested lookups",
		Long: `chronox converts between calendar times and float epoch timestamps,
splits time ranges into fixed-size chunks and reads nested values out of
TOML, YAML and JSON documents.

Configuration is read from --config or discovered as chronox.toml,
chronox.yaml or chronox.json in the working directory, the user config
directory and /etc/chronox. Every key can be overridden with a CHRONOX_
environment variable, e.g. CHRONOX_TIME_TIMEZONE=Europe/Berlin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: discovered chronox.toml/.yaml/.json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")

	cmd.AddCommand(NewTimestampCommand(opts))
	cmd.AddCommand(NewDateTimeCommand(opts))
	cmd.AddCommand(NewChunkCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// prepare loads configuration and builds the per-invocation logger
func (o *RootOptions) prepare(logOutput io.Writer) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	o.config = cfg

	level, err := cxlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return cxerror.Wrap(err, "invalid log level in configuration").
			WithCode(cxerror.CodeConfigError).
			WithOperation("chronox.prepare").
			WithDetail("key", "log.level")
	}
	if o.Verbose && level > cxlog.LevelDebug {
		level = cxlog.LevelDebug
	}

	formatName := o.LogFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format")
	}
	format, err := cxlog.ParseFormat(formatName)
	if err != nil {
		return cxerror.Wrap(err, "invalid log format").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("chronox.prepare").
			WithDetail("format", formatName)
	}

	o.requestID = uuid.New().String()
	o.logger = cxlog.NewWithConfig(cxlog.Config{
		Level:  level,
		Format: format,
		Output: logOutput,
		Name:   "chronox",
	}).WithRequestID(o.requestID)

	o.logger.Debug("configuration loaded",
		cxlog.String("config_file", cfg.FilePath()),
		cxlog.String("config_format", cfg.Format().String()))
	return nil
}

func (o *RootOptions) loadConfig() (*cxconfig.Config, error) {
	if o.ConfigFile != "" {
		return cxconfig.LoadWithOptions(o.ConfigFile, cxconfig.LoadOptions{
			Format:    cxconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  configDefaults,
		})
	}

	discovery := cxconfig.DefaultDiscoveryOptions("chronox")
	discovery.EnvPrefix = EnvPrefix
	discovery.Defaults = configDefaults
	return cxconfig.Discover(discovery)
}

// Config returns the configuration loaded for this invocation
func (o *RootOptions) Config() *cxconfig.Config {
	if o.config == nil {
		o.config = cxconfig.Empty(cxconfig.LoadOptions{EnvPrefix: EnvPrefix, Defaults: configDefaults})
	}
	return o.config
}

// Logger returns the logger for this invocation
func (o *RootOptions) Logger() *cxlog.Logger {
	if o.logger == nil {
		o.logger = cxlog.Discard()
	}
	return o.logger
}

// location resolves the timezone flag, falling back to time.timezone from
// the configuration. No timezone at all yields nil, meaning naive values.
func (o *RootOptions) location(flagValue string) (*time.Location, error) {
	if name := strings.TrimSpace(flagValue); name != "" {
		return timex.LoadLocation(name)
	}
	return o.Config().GetLocation("time.timezone", nil)
}

// ExitCode maps an error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cxerror.GetCode(err).IsClientError() {
		return ExitCommandError
	}

	var cxErr *cxerror.Error
	if !errors.As(err, &cxErr) {
		// cobra argument and flag errors
		return ExitCommandError
	}
	return ExitFailure
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
