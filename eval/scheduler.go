package eval

import (
	"fmt"
	"os"
	"time"

	"github.com/sst-lang/sst/parser"
)

// Clock abstracts the passage of time so always-block scheduling can
// be driven deterministically in tests (spec §9: "expose a scheduler
// interface ... so a test harness can substitute a virtual clock").
type Clock interface {
	Sleep(d time.Duration)
}

// realClock sleeps for real; it is the scheduler's default.
type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Scheduler spawns and runs the periodic background workers an
// "always(interval):" statement declares (spec §4.7). Workers are
// daemon tasks: nothing ever joins them, and the process may exit
// while they are still running.
type Scheduler struct {
	clock Clock
}

// NewScheduler creates a Scheduler backed by the real wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{clock: realClock{}}
}

// Schedule spawns a goroutine that runs body forever, sleeping
// interval seconds between iterations, against its own isolated
// environment (spec §5's chosen redesign: "clone the environment per
// worker at always submission time"). Each iteration recovers its own
// panics so one worker's fatal error cannot take down another worker
// or the main evaluator; the error is reported to stderr and that
// worker's loop stops, since "always" gives workers no supervisor to
// restart them.
func (s *Scheduler) Schedule(ev *Evaluator, body []parser.Stmt, intervalSeconds float64) {
	worker := ev.forkWorker()
	go func() {
		interval := time.Duration(intervalSeconds * float64(time.Second))
		for {
			if !runWorkerIteration(worker, body) {
				return
			}
			s.clock.Sleep(interval)
		}
	}()
}

// runWorkerIteration executes one pass of an always-block's body,
// reporting whether the worker should keep running.
func runWorkerIteration(worker *Evaluator, body []parser.Stmt) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[ALWAYS WORKER ERROR] %v\n", r)
			ok = false
		}
	}()
	ok = true
	worker.execBlockRecoveringLoopControl(body)
	return ok
}
