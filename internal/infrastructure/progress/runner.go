package progress

import (
	"sync"
	"time"

	"github.com/mmgen/minutes-console/internal/core/domain"
	"github.com/mmgen/minutes-console/internal/core/ports"
)

// Runner schedules one delayed activation per step and keeps every handle so
// the whole sequence can be cancelled the instant the real result arrives.
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Start(steps []domain.ProgressStep, onStep func(domain.ProgressStep)) ports.ProgressHandle {
	handle := &handle{}
	handle.mu.Lock()
	defer handle.mu.Unlock()

	for _, step := range steps {
		step := step
		timer := time.AfterFunc(step.Offset, func() {
			// The mutex is held across the render so Cancel blocks until an
			// in-flight step completes: once Cancel returns, no step output
			// can interleave with the terminal state.
			handle.mu.Lock()
			defer handle.mu.Unlock()
			if handle.cancelled {
				return
			}
			onStep(step)
		})
		handle.timers = append(handle.timers, timer)
	}
	return handle
}

type handle struct {
	mu        sync.Mutex
	timers    []*time.Timer
	cancelled bool
}

// Cancel stops every pending activation and waits for a step that is mid-
// render. A step whose timer already expired but has not run yet is
// suppressed by the cancelled flag. Safe to call twice.
func (h *handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	for _, timer := range h.timers {
		timer.Stop()
	}
	h.timers = nil
}
