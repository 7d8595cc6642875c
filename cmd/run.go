package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sst-lang/sst/eval"
	"github.com/sst-lang/sst/file"
)

var (
	redColor = color.New(color.FgRed)
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Interpret an SST source file",
	Long: `Run reads a file, interprets it, and exits.

With no file argument, run looks for "main.sst" in the current
directory (spec §6's "fixed file" entry point).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runFile(cmd, args)
	}
}

// runFile implements spec §6's program entry and exit-code policy:
// exit 0 on clean completion, non-zero with a single diagnostic line
// on any uncaught fatal error (grounded on the teacher's
// executeFileWithRecovery, _examples/akashmaji946-go-mix/main/main.go).
func runFile(_ *cobra.Command, args []string) error {
	path := "main.sst"
	if len(args) == 1 {
		path = args[0]
	}

	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	baseDir := filepath.Dir(path)
	ev := eval.New(os.Stdout, os.Stdin, file.NewOSReader(baseDir))

	if err := ev.RunSource(string(src)); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(1)
	}
	return nil
}
