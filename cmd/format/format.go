/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format provides the fmt command for cooldata.
package format

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/config"
	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/internal/logger"
	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/render"
)

// Cmd is the fmt cobra command.
var Cmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Re-render CoolData documents in canonical form",
	Long: `Re-render documents with sorted keys and consistent indentation.

Output goes to stdout unless --write is set, in which case each file is
rewritten in place in the format its extension names.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("write", "w", false, "Write result to the source file instead of stdout")
	Cmd.Flags().String("indent", "", "Indent for nested objects (default: two spaces)")
	_ = viper.BindPFlag("indent", Cmd.Flags().Lookup("indent"))
}

func run(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	indent := viper.GetString("indent")
	if indent == "" {
		indent = cfg.Indent
	}

	for _, file := range files {
		if write && config.IsURL(file) {
			return fmt.Errorf("cannot write to %s", file)
		}
		if err := File(cmd.Context(), filesystem, file, indent, write, cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}

// File formats one document. With write set it is saved back to file,
// otherwise the CoolData rendering is written to out.
func File(ctx context.Context, filesystem fs.FileSystem, file, indent string, write bool, out io.Writer) error {
	obj, err := load.Load(ctx, file, load.Options{
		FS:       filesystem,
		Fetcher:  load.NewHTTPFetcher(load.DefaultMaxSize),
		MaxDepth: viper.GetInt("max-depth"),
	})
	if err != nil {
		return err
	}

	if !write {
		return render.Write(out, obj, render.Options{Indent: indent})
	}

	logger.Info("Formatting %s...", file)
	return load.Save(filesystem, file, obj, load.SaveOptions{
		Convert: convert.Options{Indent: indent},
	})
}
