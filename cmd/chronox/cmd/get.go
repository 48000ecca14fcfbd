package cmd

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cxconfig "github.com/msto63/chronox/foundation/core/config"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	cxlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/foundation/utils/objx"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		defaultValue string
		formatName   string
	)

	cmd := &cobra.Command{
		Use:   "get <file> <key>...",
		Short: "Read a nested value from a TOML, YAML or JSON document",
		Long: `Follow the keys through the document and print the value found there.

When a key is missing, a value on the way is empty (null, false, 0, "" or
an empty table or list), or a scalar is reached before the last key, the
--default value is printed instead. Without --default that is an error.
Tables and lists are printed as YAML. An empty key is rejected.`,
		Example: `  chronox get chronox.toml time timezone
  chronox get deploy.yaml services api replicas --default 1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, keys := args[0], args[1:]
			logger := rootOpts.Logger().WithField("document", path)

			format := cxconfig.DetectFormat(path)
			if formatName != "" {
				f, err := cxconfig.ParseFormat(formatName)
				if err != nil {
					return err
				}
				if f != cxconfig.FormatAuto {
					format = f
				}
			}

			content, err := os.ReadFile(path)
			if err != nil {
				code := cxerror.CodeInternal
				if os.IsNotExist(err) {
					code = cxerror.CodeNotFound
				}
				return cxerror.Wrap(err, "failed to read document").
					WithCode(code).
					WithOperation("chronox.get").
					WithDetail("document", path)
			}

			doc, err := cxconfig.DecodeDocument(content, format)
			if err != nil {
				return cxerror.Wrap(err, "failed to decode document").
					WithDetail("document", path)
			}

			hasDefault := cmd.Flags().Changed("default")
			usedDefault := false
			fallback := objx.Supplier(func() any {
				usedDefault = true
				logger.Debug("path not resolved, using default",
					cxlog.String("path", strings.Join(keys, ".")),
					cxlog.Bool("has_default", hasDefault))
				if hasDefault {
					return defaultValue
				}
				return nil
			})

			value, err := objx.GetValueOrDefault(doc, fallback, keys...)
			if err != nil {
				return err
			}
			if usedDefault && !hasDefault {
				return cxerror.Newf("no value at %s", strings.Join(keys, ".")).
					WithCode(cxerror.CodeNotFound).
					WithOperation("chronox.get").
					WithDetail("document", path)
			}

			return printValue(cmd.OutOrStdout(), value)
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "value to print when the path cannot be followed")
	cmd.Flags().StringVar(&formatName, "format", "", "document format (toml|yaml|json, default: from extension)")
	return cmd
}

// printValue writes scalars as-is and tables or lists as YAML
func printValue(w io.Writer, value any) error {
	if isComposite(value) {
		out, err := yaml.Marshal(value)
		if err != nil {
			return cxerror.Wrap(err, "failed to render value").
				WithCode(cxerror.CodeInternal).
				WithOperation("chronox.get")
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

// isComposite reports maps, slices and arrays; byte slices count as scalars
func isComposite(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map, reflect.Array:
		return true
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
