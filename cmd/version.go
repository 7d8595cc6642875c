package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		color.New(color.FgCyan).Printf("sst %s\n", Version)
		fmt.Println("https://github.com/sst-lang/sst")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
