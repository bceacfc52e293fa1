/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for cooldata.
package convert

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/config"
	convertlib "bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/internal/logger"
	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/value"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert documents between formats",
	Long: `Convert a document between CoolData, JSON, YAML and TOML.

Formats:
  cool       CoolData source (default)
  json       Nested JSON
  flat-json  Flat key-value JSON with delimiter-joined paths (output only)
  yaml       YAML mapping
  toml       TOML document

The input format is taken from the file extension unless --from is set.
The output format is taken from --to, then the --output extension, then
the format key in .config/cooldata.yaml. A trailing .zst on either path
means zstd compression.

Examples:
  # CoolData to JSON on stdout
  cooldata convert --to json app.cool

  # JSON to CoolData, rewriting snake_case keys
  cooldata convert --key-case camel -o app.cool app.json

  # Flat JSON with prefixed keys
  cooldata convert --to json --flatten --prefix app app.cool

  # One file per top-level field
  cooldata convert -o "out/{group}.yaml" app.cool`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout); {group} splits by top-level field")
	Cmd.Flags().StringP("to", "t", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().String("from", "", "Input format (default: from file extension)")
	Cmd.Flags().Bool("flatten", false, "Flatten to delimiter-joined keys (json only)")
	Cmd.Flags().StringP("delimiter", "d", "-", "Delimiter for flattened keys")
	Cmd.Flags().String("prefix", "", "Prefix for flattened keys")
	Cmd.Flags().String("key-case", "", "Rewrite keys: "+strings.Join(formatter.ValidKeyCases(), ", "))
	_ = viper.BindPFlag("prefix", Cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("key-case", Cmd.Flags().Lookup("key-case"))
}

// Options configures one conversion.
type Options struct {
	From     convertlib.Format
	To       convertlib.Format
	Output   string
	MaxDepth int
	Convert  convertlib.Options
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	toFlag, _ := cmd.Flags().GetString("to")
	fromFlag, _ := cmd.Flags().GetString("from")
	flatten, _ := cmd.Flags().GetBool("flatten")
	delimiter, _ := cmd.Flags().GetString("delimiter")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	opts := Options{
		Output:   output,
		MaxDepth: viper.GetInt("max-depth"),
		Convert: convertlib.Options{
			Flatten:   flatten,
			Delimiter: delimiter,
			Prefix:    viper.GetString("prefix"),
			Indent:    cfg.Indent,
		},
	}

	var err error
	switch {
	case toFlag != "":
		if opts.To, err = convertlib.ParseFormat(toFlag); err != nil {
			return err
		}
	case output != "":
		opts.To = convertlib.FormatFromExtension(output)
	default:
		opts.To = cfg.OutputFormat()
	}

	if fromFlag != "" {
		if opts.From, err = convertlib.ParseFormat(fromFlag); err != nil {
			return err
		}
	}

	keyCase := viper.GetString("key-case")
	if keyCase == "" {
		keyCase = cfg.KeyCase
	}
	if opts.Convert.KeyCase, err = formatter.ParseKeyCase(keyCase); err != nil {
		return err
	}

	return Convert(cmd.Context(), filesystem, args[0], opts, cmd.OutOrStdout())
}

// Convert loads file and writes it in the target format, to opts.Output
// when set and to out otherwise.
func Convert(ctx context.Context, filesystem fs.FileSystem, file string, opts Options, out io.Writer) error {
	obj, err := load.Load(ctx, file, load.Options{
		FS:       filesystem,
		Fetcher:  load.NewHTTPFetcher(load.DefaultMaxSize),
		Format:   opts.From,
		MaxDepth: opts.MaxDepth,
		KeyCase:  opts.Convert.KeyCase,
	})
	if err != nil {
		return err
	}

	if strings.Contains(opts.Output, "{group}") {
		return writeGroups(filesystem, obj, opts)
	}

	if opts.Output != "" {
		logger.Info("Writing %s...", opts.Output)
		return load.Save(filesystem, opts.Output, obj, load.SaveOptions{
			Format:  opts.To,
			Convert: opts.Convert,
		})
	}

	data, err := convertlib.Encode(obj, opts.To, opts.Convert)
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// writeGroups saves each top-level field as its own document, substituting
// the field name for {group} in the output path.
func writeGroups(filesystem fs.FileSystem, obj *value.Object, opts Options) error {
	var failures int
	for name, v := range obj.All() {
		doc := value.NewObject()
		doc.Set(name, v)

		path := strings.ReplaceAll(opts.Output, "{group}", formatter.TransformKey(name, opts.Convert.KeyCase))
		logger.Info("Writing %s...", path)
		if err := load.Save(filesystem, path, doc, load.SaveOptions{
			Format:  opts.To,
			Convert: opts.Convert,
		}); err != nil {
			logger.Error("%v", err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d outputs failed", failures, obj.Len())
	}
	return nil
}
