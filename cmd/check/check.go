/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for cooldata.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/config"
	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/internal/logger"
	"bennypowers.dev/cooldata/lexer"
	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/parser"
	"bennypowers.dev/cooldata/validator"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check CoolData documents",
	Long: `Check documents for syntax errors and lint findings.

With no arguments, the files listed in .config/cooldata.yaml are checked.
Lint findings are warnings unless --strict is set.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on lint findings")
	_ = viper.BindPFlag("strict", Cmd.Flags().Lookup("strict"))
}

// Report is the outcome of checking one file.
type Report struct {
	File     string
	Err      error
	Findings []validator.ValidationError
	Fields   int
	// Elapsed is the time spent reading, parsing and linting the file.
	Elapsed time.Duration

	// loaded marks errors from load.Load, which already name the file.
	loaded bool
}

// Message formats the failure of r. Syntax errors read file:line:col: message.
func (r Report) Message() string {
	if r.Err == nil {
		return ""
	}
	if r.loaded {
		return r.Err.Error()
	}
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var literalErr *parser.LiteralError
	if errors.As(r.Err, &lexErr) || errors.As(r.Err, &parseErr) || errors.As(r.Err, &literalErr) {
		return r.File + ":" + r.Err.Error()
	}
	return r.File + ": " + r.Err.Error()
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	// Load config from .config/cooldata.{yaml,json}
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

	strict := viper.GetBool("strict") || cfg.Strict
	reports := CheckFiles(cmd.Context(), filesystem, cfg, files, viper.GetInt("max-depth"))

	failed := false
	for _, r := range reports {
		if !logReport(os.Stderr, r, strict) {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("check failed")
	}

	logger.Info("All files valid.")
	return nil
}

// logReport prints the outcome of r and reports whether it passed.
// Syntax errors go to w unprefixed so editors can jump to them.
func logReport(w io.Writer, r Report, strict bool) bool {
	logger.Debug("%s: checked in %s", r.File, r.Elapsed)
	if r.Err != nil {
		fmt.Fprintln(w, r.Message())
		return false
	}
	for _, finding := range r.Findings {
		if strict {
			logger.Error("%s", finding.Error())
		} else {
			logger.Warn("%s", finding.Error())
		}
	}
	logger.Info("%s: %d fields, %d findings", r.File, r.Fields, len(r.Findings))
	return !strict || len(r.Findings) == 0
}

// CheckFiles checks files concurrently. Reports are returned in the order of files.
func CheckFiles(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, files []string, maxDepth int) []Report {
	reports := make([]Report, len(files))
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	for i, file := range files {
		p.Go(func() {
			reports[i] = CheckFile(ctx, filesystem, cfg, file, maxDepth)
		})
	}
	p.Wait()
	return reports
}

// CheckFile parses one file and lints it when it is CoolData source.
// URLs and other formats are loaded and decoded but not linted.
func CheckFile(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, file string, maxDepth int) Report {
	start := time.Now()
	report := checkFile(ctx, filesystem, cfg, file, maxDepth)
	report.Elapsed = time.Since(start)
	return report
}

func checkFile(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, file string, maxDepth int) Report {
	report := Report{File: file}

	opts := cfg.OptionsForFile(file)
	if maxDepth > 0 {
		opts.MaxDepth = maxDepth
	}

	if config.IsURL(file) || convert.FormatFromExtension(file) != convert.FormatCool {
		obj, err := load.Load(ctx, file, load.Options{
			FS:       filesystem,
			Fetcher:  load.NewHTTPFetcher(load.DefaultMaxSize),
			MaxDepth: opts.MaxDepth,
		})
		if err != nil {
			report.Err = err
			report.loaded = true
			return report
		}
		report.Fields = obj.Len()
		return report
	}

	data, err := filesystem.ReadFile(file)
	if err != nil {
		report.Err = fmt.Errorf("failed to read: %w", err)
		return report
	}
	if data, err = load.Decompress(data, load.DefaultMaxSize); err != nil {
		report.Err = err
		return report
	}

	tokens, err := lexer.Tokenize(string(data))
	if err != nil {
		report.Err = err
		return report
	}
	obj, err := parser.Parse(tokens, opts)
	if err != nil {
		report.Err = err
		return report
	}

	report.Fields = obj.Len()
	report.Findings = validator.LintWithPath(tokens, file)
	return report
}
