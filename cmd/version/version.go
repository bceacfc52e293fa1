/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for cooldata.
package version

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information for cooldata.

The JSON form also lists the document formats this build reads and writes.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// Report is the JSON form of the version command.
type Report struct {
	version.Build
	Formats []string `json:"formats"`
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	build := version.Read()
	switch format {
	case "json":
		out, err := json.MarshalIndent(Report{Build: build, Formats: convert.ValidFormats()}, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		fmt.Fprintf(cmd.OutOrStdout(), "cooldata %s\n", build)
	default:
		return fmt.Errorf("unknown format %q (valid: text, json)", format)
	}
	return nil
}
