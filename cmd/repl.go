package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sst-lang/sst/repl"
)

const banner = `
  ___ ___ _____
 / __/ __|_   _|
 \__ \__ \ | |
 |___/___/ |_|
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		r := repl.New(banner, Version, "----------------------------------------", "sst >>> ", cwd)
		return r.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
