package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cxerror "github.com/msto63/chronox/foundation/core/error"
	cxlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/foundation/utils/timex"
)

// NewTimestampCommand creates the ts command.
func NewTimestampCommand(rootOpts *RootOptions) *cobra.Command {
	var tz string

	cmd := &cobra.Command{
		Use:   "ts <datetime>",
		Short: "Convert a calendar time to a float epoch timestamp",
		Long: `Convert a calendar time to seconds since 1970-01-01T00:00:00Z.

Inputs with an offset (RFC 3339, ISO 8601) denote an exact instant. Inputs
without one are read in --tz, or in time.timezone from the configuration;
with neither they are taken as UTC.`,
		Example: `  chronox ts 1970-01-01T02:00:00+01:00   # 3600
  chronox ts "2020-10-10 15:30" --tz Europe/Berlin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := rootOpts.location(tz)
			if err != nil {
				return err
			}

			d, err := timex.ParseDateTime(args[0], loc)
			if err != nil {
				return err
			}

			ts := timex.ToUnixFloat(d)
			rootOpts.Logger().Debug("converted calendar time",
				cxlog.String("input", args[0]),
				cxlog.Bool("aware", d.IsAware()),
				cxlog.Float64("timestamp", ts))

			fmt.Fprintln(cmd.OutOrStdout(), formatTimestamp(ts))
			return nil
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "", "timezone for inputs without an offset (IANA name)")
	return cmd
}

// NewDateTimeCommand creates the dt command.
func NewDateTimeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		tz     string
		layout string
	)

	cmd := &cobra.Command{
		Use:   "dt <timestamp>",
		Short: "Convert a float epoch timestamp to a calendar time",
		Long: `Convert seconds since 1970-01-01T00:00:00Z to a calendar time.

With --tz (or time.timezone in the configuration) the result carries that
timezone and its offset. Without one the result is a naive UTC wall clock.
Fractions are kept to the microsecond. Pass negative timestamps after --.`,
		Example: `  chronox dt 3600                 # 1970-01-01T01:00:00
  chronox dt 3600 --tz Europe/Berlin
  chronox dt -- -0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return cxerror.Wrap(err, "timestamp must be a number").
					WithCode(cxerror.CodeInvalidFormat).
					WithOperation("chronox.dt").
					WithDetail("input", args[0])
			}
			if err := timex.CheckUnixFloat(ts); err != nil {
				return cxerror.Wrap(err, "invalid timestamp").
					WithOperation("chronox.dt").
					WithDetail("input", args[0])
			}

			loc, err := rootOpts.location(tz)
			if err != nil {
				return err
			}

			d := timex.FromUnixFloat(ts, loc)
			rootOpts.Logger().Debug("converted timestamp",
				cxlog.Float64("timestamp", ts),
				cxlog.Bool("aware", d.IsAware()))

			if layout != "" {
				fmt.Fprintln(cmd.OutOrStdout(), d.Format(layout))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "", "timezone of the result (IANA name)")
	cmd.Flags().StringVar(&layout, "layout", "", "Go time layout for the output")
	return cmd
}

func formatTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
