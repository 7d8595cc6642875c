/*
File    : sst/eval/evaluator.go

Package eval implements the evaluator: AST + environment -> effects
(spec §2, §4.6). It is the largest component, bottom-up, and the one
every other package exists to serve.
*/
package eval

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/sst-lang/sst/environment"
	"github.com/sst-lang/sst/file"
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

// Evaluator holds everything one thread of execution needs to walk a
// program: the active environment, the shared type registry, the
// output/input channels, and the module reader (spec §4.4's env,
// spec §2's "type registry", spec §6's I/O channels).
//
// Registry, the writer and its mutex, the input reader, the module
// reader and the scheduler are shared across every always-worker an
// Evaluator's Scheduler spawns (spec §5); only Env is per-worker,
// cloned fresh by forkWorker.
type Evaluator struct {
	Env      *environment.Environment
	Registry *environment.Registry
	Files    file.Reader

	writerMu *sync.Mutex
	writer   io.Writer
	reader   *bufio.Reader

	scheduler *Scheduler
}

// New creates a top-level Evaluator reading from r and writing to w,
// resolving "use" modules through files.
func New(w io.Writer, r io.Reader, files file.Reader) *Evaluator {
	return &Evaluator{
		Env:       environment.New(),
		Registry:  environment.NewRegistry(),
		Files:     files,
		writerMu:  &sync.Mutex{},
		writer:    w,
		reader:    bufio.NewReader(r),
		scheduler: NewScheduler(),
	}
}

// forkWorker builds an Evaluator for a new always-block goroutine: an
// isolated clone of the current environment, but the same shared
// Registry, output mutex and module reader (spec §5's resolution of
// the concurrency open question).
func (e *Evaluator) forkWorker() *Evaluator {
	return &Evaluator{
		Env:       e.Env.Clone(),
		Registry:  e.Registry,
		Files:     e.Files,
		writerMu:  e.writerMu,
		writer:    e.writer,
		reader:    e.reader,
		scheduler: e.scheduler,
	}
}

// output writes line, space-joining its already-stringified parts,
// guarded by a mutex so concurrent always-workers never interleave a
// single line (spec §4.5 "output", spec §5's shared-writer policy).
func (e *Evaluator) output(parts []string) {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	io.WriteString(e.writer, strings.Join(parts, " "))
	io.WriteString(e.writer, "\n")
}

// nextInputToken reads the next whitespace-separated token from the
// input channel (spec §4.5 "input"), or fails if the stream is
// exhausted.
func (e *Evaluator) nextInputToken() string {
	var sb strings.Builder
	// Skip leading whitespace.
	for {
		b, err := e.reader.ReadByte()
		if err != nil {
			fail("input: unexpected end of input stream")
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		e.reader.UnreadByte()
		break
	}
	for {
		b, err := e.reader.ReadByte()
		if err != nil {
			break
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// RunSource tokenizes, parses and evaluates src as a complete top-level
// program, recovering any fatal evalError into a returned error (spec
// §7's "propagate to the nearest enclosing top-level statement
// boundary"). It is the single entry point shared by the CLI driver,
// the REPL, and the "use"/"exec" re-entrant paths (spec §9: "keep the
// pipeline pure ... so re-entry is safe").
func (e *Evaluator) RunSource(src string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*evalError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()

	p, perr := parser.NewParser(src)
	if perr != nil {
		return perr
	}
	prog, perr := p.Parse()
	if perr != nil {
		return perr
	}
	e.execProgramTopLevel(prog)
	return nil
}

// execProgramTopLevel runs prog's statements and is the recovery
// boundary for a break/continue that escapes every enclosing loop —
// spec §7 calls this "itself a fatal error".
func (e *Evaluator) execProgramTopLevel(prog *parser.Program) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				fail("'break' used outside of any loop")
			case continueSignal:
				fail("'continue' used outside of any loop")
			case returnSignal:
				fail("'return' used outside of any function call")
			default:
				panic(r)
			}
		}
	}()
	for _, stmt := range prog.Statements {
		e.execStmt(stmt)
	}
}

// execBlockRecoveringLoopControl runs a block of statements at the
// top level of an always-worker iteration, applying the same
// escaping-control-flow policy as execProgramTopLevel.
func (e *Evaluator) execBlockRecoveringLoopControl(body []parser.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				fail("'break' used outside of any loop")
			case continueSignal:
				fail("'continue' used outside of any loop")
			case returnSignal:
				fail("'return' used outside of any function call")
			default:
				panic(r)
			}
		}
	}()
	for _, stmt := range body {
		e.execStmt(stmt)
	}
}

// valueIsNil reports whether v is the Nil value, distinguishing "no
// result" from a legitimate falsy result.
func valueIsNil(v values.Value) bool {
	_, ok := v.(*values.Nil)
	return ok
}
