// Package trace records evaluator invocations as named steps so the
// orchestration system can reconstruct what ran and how long it took.
// The decorator is purely observational: it never changes return values
// or errors of the evaluator it wraps.
package trace

import (
	"context"
	"sync"
	"time"

	"github.com/datar-psa/runeval/api"
)

// Step is one recorded evaluator invocation.
type Step struct {
	// Name is the display name the step was recorded under
	Name string `json:"name"`
	// RunID identifies the run that was being evaluated
	RunID string `json:"run_id,omitempty"`
	// Err holds the error message when the invocation failed
	Err       string        `json:"error,omitempty"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// Recorder collects steps in invocation order. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(s Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, s)
}

// Steps returns a copy of all recorded steps.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Reset discards all recorded steps.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
}

// Wrap decorates an evaluator so every invocation is recorded under name.
// A nil recorder returns next unchanged.
func Wrap(rec *Recorder, name string, next api.RunEvaluator) api.RunEvaluator {
	if rec == nil {
		return next
	}
	return api.RunEvaluatorFunc(func(ctx context.Context, run *api.Run, example *api.Example) (api.Result, error) {
		step := Step{Name: name, StartTime: time.Now()}
		if run != nil {
			step.RunID = run.ID
		}

		result, err := next.EvaluateRun(ctx, run, example)

		step.EndTime = time.Now()
		step.Duration = step.EndTime.Sub(step.StartTime)
		if err != nil {
			step.Err = err.Error()
		}
		rec.record(step)

		return result, err
	})
}
