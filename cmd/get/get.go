/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package get provides the get command for cooldata.
package get

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/render"
	"bennypowers.dev/cooldata/value"
)

// Cmd is the get cobra command.
var Cmd = &cobra.Command{
	Use:   "get <file> [path]",
	Short: "Print the value at a dotted path",
	Long: `Print the value at a dotted path, e.g. "server.tls.cert" or "items.0".

Scalars are printed raw. Objects print as documents and lists as CoolData.
With no path the whole document is printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("kind", false, "Print the kind of the value instead of the value")
}

func run(cmd *cobra.Command, args []string) error {
	showKind, _ := cmd.Flags().GetBool("kind")

	obj, err := load.Load(cmd.Context(), args[0], load.Options{
		Fetcher:  load.NewHTTPFetcher(load.DefaultMaxSize),
		MaxDepth: viper.GetInt("max-depth"),
	})
	if err != nil {
		return err
	}

	var v value.Value = obj
	if len(args) == 2 && args[1] != "" {
		if v, err = value.Lookup(obj, args[1]); err != nil {
			return err
		}
	}

	if showKind {
		fmt.Fprintln(cmd.OutOrStdout(), v.Kind())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), Format(v))
	return nil
}

// Format returns the text get prints for v. Strings are not quoted,
// objects print as documents and lists use their source form.
func Format(v value.Value) string {
	switch x := v.(type) {
	case value.Int:
		return strconv.FormatInt(int64(x), 10)
	case value.Float:
		return render.FormatFloat(x)
	case value.String:
		return string(x)
	case *value.Object:
		return strings.TrimSuffix(render.Render(x), "\n")
	default:
		return render.RenderValue(v)
	}
}
