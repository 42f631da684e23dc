// Package cmd implements the CLI commands for ordtree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version of the ordtree command.
const Version = "0.1.0"

// RootCmd represents the base "ordtree" command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ordtree",
	Short: "Load records into ordered trees and inspect them",
	Long: `ordtree loads a fixture of records into a binary search tree (bst)
and an AVL tree (avl) and lets you inspect the result: traversals,
searches, statistics, structural checks and drawings.

Every invocation starts with empty trees. Records are read from the
fixture named in the configuration file (default ordtree.toml) or
given with --fixture, either YAML or an HTML table.`,
	SilenceUsage: true,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringP("config", "c", defaultConfigFile, "Path to configuration file")
	flags.StringP("fixture", "f", "", "Records to load (.yaml, .yml, .html or .htm)")
	flags.StringP("variant", "t", "", "Tree variant to work on (bst or avl)")
	flags.Bool("events", false, "Print tree events to stderr")
	flags.String("color", "", "Color output (auto, always or never)")
}

// Execute adds all subcommands to the RootCmd and sets their flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
