/*
File    : sst/repl/repl.go

Package repl implements an interactive Read-Eval-Print Loop over the
evaluator, adapted from the teacher's own repl package
(_examples/akashmaji946-go-mix/repl/repl.go) to SST's RunSource entry
point: each line is tokenized, parsed and evaluated against the same
long-lived Evaluator, so variables and functions declared on one line
stay visible on the next.
*/
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sst-lang/sst/eval"
	"github.com/sst-lang/sst/file"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic details of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	BaseDir string
}

// New creates a Repl with the given banner/version/prompt, resolving
// "use" modules relative to baseDir.
func New(banner, version, line, prompt, baseDir string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, BaseDir: baseDir}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type your code and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines from stdin via readline and
// writing results/errors to w. One Evaluator persists across the
// whole session, matching the teacher's "evaluator instance (maintains
// state across REPL sessions)".
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	// "input()" reads from the process's real stdin rather than
	// through readline, which owns stdin for line editing; a program
	// mixing REPL lines and `input()` calls in the same session is an
	// edge case the teacher's REPL does not handle either.
	ev := eval.New(w, os.Stdin, file.NewOSReader(r.BaseDir))

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(w, ev, line)
	}
}

// evalLine runs one line of input against ev, recovering any fatal
// error into a red diagnostic so the session keeps going (spec §7
// does not apply the top-level fatal-exit policy inside the REPL: the
// teacher's REPL never exits the process on error, and neither does
// this one).
func (r *Repl) evalLine(w io.Writer, ev *eval.Evaluator, line string) {
	if err := ev.RunSource(line); err != nil {
		redColor.Fprintf(w, "[ERROR] %s\n", err)
	}
}
