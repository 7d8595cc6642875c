/*
File    : sst/cmd/root.go

Package cmd wires the sst command-line driver with
github.com/spf13/cobra, grounded on
_examples/CWBudde-go-dws/cmd/dwscript/cmd. The teacher
(akashmaji946-go-mix) parses os.Args by hand; cobra replaces that with
the subcommand shape SPEC_FULL.md's driver surface calls for (run,
repl, version).
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the interpreter's version string, printed by "sst version".
const Version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "sst",
	Short: "SST is a small imperative scripting language interpreter",
	Long: `sst interprets SST source files: a small imperative,
statically-typed-surface scripting language with user-defined record
types and methods, a periodic-task "always" primitive, and dynamic
module loading via "use".`,
	Version: Version,
}

// Execute runs the root command, dispatching to whichever subcommand
// the arguments name.
func Execute() error {
	return rootCmd.Execute()
}
