/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for cooldata.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cooldata/cmd/check"
	"bennypowers.dev/cooldata/cmd/convert"
	"bennypowers.dev/cooldata/cmd/format"
	"bennypowers.dev/cooldata/cmd/get"
	"bennypowers.dev/cooldata/cmd/tokens"
	"bennypowers.dev/cooldata/cmd/tree"
	"bennypowers.dev/cooldata/cmd/version"
	"bennypowers.dev/cooldata/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cooldata",
	Short: "Parse and work with CoolData documents",
	Long: `cooldata parses, checks, formats and converts CoolData documents:
nested key = value assignments with braces for objects and brackets for lists.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetQuiet(viper.GetBool("quiet"))
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum nesting depth (0 means unlimited)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only output errors and warnings")
	_ = viper.BindPFlag("max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Output debug messages such as per-file timing")
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(format.Cmd)
	rootCmd.AddCommand(get.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(tree.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// initEnv lets COOLDATA_* environment variables stand in for flags,
// e.g. COOLDATA_MAX_DEPTH=64.
func initEnv() {
	viper.SetEnvPrefix("COOLDATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
