// internal/app/runner.go
package app

import (
	"context"

	"go-astar-visualizer/pkg/gridmap"
)

// Runner drives Board.Search on its own goroutine one expansion at a time,
// so a frame loop can draw between steps. The search goroutine and the
// caller never run at the same time: the search only proceeds while the
// caller is blocked in Advance or Cancel.
type Runner struct {
	gridmap.NopObserver

	board  *Board
	ctx    context.Context
	cancel context.CancelFunc

	permit chan struct{}
	yield  chan struct{}
	done   chan runOutcome

	finished bool
	result   gridmap.Result
	err      error
	steps    int
}

type runOutcome struct {
	result gridmap.Result
	err    error
}

// NewRunner prepares a stepped search. Nothing is expanded until the first
// Advance.
func (b *Board) NewRunner(parent context.Context) (*Runner, error) {
	if !b.Ready() {
		return nil, ErrNotReady
	}
	ctx, cancel := context.WithCancel(parent)
	r := &Runner{
		board:  b,
		ctx:    ctx,
		cancel: cancel,
		permit: make(chan struct{}),
		yield:  make(chan struct{}),
		done:   make(chan runOutcome, 1),
	}
	go r.loop()
	return r, nil
}

func (r *Runner) loop() {
	select {
	case <-r.permit:
	case <-r.ctx.Done():
	}
	res, err := r.board.Search(r.ctx, r)
	r.done <- runOutcome{result: res, err: err}
}

// OnStepComplete hands control back to the caller and waits for the next
// permit or cancellation.
func (r *Runner) OnStepComplete() {
	select {
	case r.yield <- struct{}{}:
	case <-r.ctx.Done():
		return
	}
	select {
	case <-r.permit:
	case <-r.ctx.Done():
	}
}

// Advance releases up to n expansions and reports whether the search has
// finished.
func (r *Runner) Advance(n int) bool {
	for i := 0; i < n && !r.finished; i++ {
		// The parent context may end the search while no permit is pending.
		select {
		case r.permit <- struct{}{}:
		case out := <-r.done:
			r.finish(out)
			return true
		}
		select {
		case <-r.yield:
			r.steps++
		case out := <-r.done:
			r.finish(out)
		}
	}
	return r.finished
}

// Cancel stops the search and waits for the goroutine to exit. The result
// outcome is Cancelled unless the search had already finished.
func (r *Runner) Cancel() (gridmap.Result, error) {
	if !r.finished {
		r.cancel()
		r.finish(<-r.done)
	}
	return r.result, r.err
}

// Finish runs the remaining expansions without yielding.
func (r *Runner) Finish() (gridmap.Result, error) {
	for !r.Advance(1 << 10) {
	}
	return r.result, r.err
}

func (r *Runner) finish(out runOutcome) {
	r.finished = true
	r.result, r.err = out.result, out.err
	r.cancel()
}

// Done reports whether the search has ended.
func (r *Runner) Done() bool {
	return r.finished
}

// Result returns the final result once Done is true.
func (r *Runner) Result() (gridmap.Result, error) {
	return r.result, r.err
}

// Steps counts expansions released so far.
func (r *Runner) Steps() int {
	return r.steps
}
