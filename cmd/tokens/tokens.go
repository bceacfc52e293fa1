/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the tokens command for cooldata.
package tokens

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/lexer"
	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/token"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a CoolData document",
	Long:  `Print each token with its location, kind and text.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	data, err := filesystem.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if data, err = load.Decompress(data, load.DefaultMaxSize); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	toks, err := lexer.Tokenize(string(data))
	if err != nil {
		return fmt.Errorf("%s:%w", args[0], err)
	}

	switch format {
	case "json":
		return JSON(cmd.OutOrStdout(), toks)
	case "table":
		return Table(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}

// Table writes one token per line: location, kind and text.
func Table(w io.Writer, toks []token.Token) error {
	locW, kindW := 3, 4
	for _, tok := range toks {
		locW = max(locW, len(tok.Loc.String()))
		kindW = max(kindW, len(tok.Kind.String()))
	}
	for _, tok := range toks {
		text := ""
		switch {
		case tok.Kind == token.String:
			text = fmt.Sprintf("%q", tok.Text)
		case tok.Kind.HasText():
			text = tok.Text
		case tok.Kind != token.Newline:
			text = tok.Kind.Symbol()
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s\n", locW, tok.Loc, kindW, tok.Kind, text); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the tokens as an indented JSON array.
func JSON(w io.Writer, toks []token.Token) error {
	if toks == nil {
		toks = []token.Token{}
	}
	out, err := json.MarshalIndent(toks, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling tokens: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
