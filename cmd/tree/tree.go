/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree provides the tree command for cooldata.
package tree

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/cmd/render"
	"bennypowers.dev/cooldata/load"
)

// Cmd is the tree cobra command.
var Cmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the value tree of a document",
	Long: `Print every node of a document with its kind and value.

Strings holding CSS colors get a color swatch when stdout is a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown")
	Cmd.Flags().Bool("no-color", false, "Disable color swatches")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")

	obj, err := load.Load(cmd.Context(), args[0], load.Options{
		Fetcher:  load.NewHTTPFetcher(load.DefaultMaxSize),
		MaxDepth: viper.GetInt("max-depth"),
	})
	if err != nil {
		return err
	}

	rows := render.ComputeRows(obj)
	switch format {
	case "markdown", "md":
		return render.Markdown(cmd.OutOrStdout(), rows)
	case "table":
		return render.Table(cmd.OutOrStdout(), rows, !noColor && isTerminal(os.Stdout))
	default:
		return fmt.Errorf("unknown format: %s (valid: table, markdown)", format)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
