package runeval

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/datar-psa/runeval/api"
	"github.com/datar-psa/runeval/loader"
	"github.com/datar-psa/runeval/trace"
)

// Adapter turns a StringScorer into a run evaluator: it extracts the scoring
// triple from a run/example pair, enforces the scorer's reference
// requirement, and reshapes the scorer's result into the standard envelope.
//
// An Adapter is immutable after construction and holds no state across
// calls, so concurrent Evaluate invocations need no synchronization.
type Adapter struct {
	scorer   api.StringScorer
	recorder *trace.Recorder
}

// AdapterOptions configures Adapter creation
type AdapterOptions struct {
	recorder *trace.Recorder
}

// WithTraceRecorder sets the recorder used when the adapter is exposed as a
// run evaluator. Evaluate itself stays trace-free.
func WithTraceRecorder(rec *trace.Recorder) func(*AdapterOptions) {
	return func(opts *AdapterOptions) {
		opts.recorder = rec
	}
}

// NewAdapter wraps one scorer. The scorer instance is held, not copied.
func NewAdapter(scorer api.StringScorer, opts ...func(*AdapterOptions)) *Adapter {
	options := &AdapterOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &Adapter{scorer: scorer, recorder: options.recorder}
}

// FromConfig resolves the configured evaluator name into a concrete scorer
// via the loader registry and wraps it in a new Adapter. Loader errors
// (unknown evaluator, invalid options) propagate unchanged.
func FromConfig(cfg loader.Config, opts ...func(*loader.Options)) (*Adapter, error) {
	scorer, err := loader.Load(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewAdapter(scorer), nil
}

// PrepareInputs derives the scoring triple from a run and optional example.
//
// The prediction is the first value of the run's outputs, the reference the
// first value of the example's outputs, and the input the first value of the
// example's inputs; "first" means insertion order of api.Fields. When a run
// or example carries more than one output field the remaining fields are
// ignored — callers holding multi-field outputs must not rely on a
// particular field being chosen.
//
// If the wrapped scorer requires a reference and the example is nil or has
// no outputs, a *api.MissingReferenceError is returned before any
// extraction happens.
func (a *Adapter) PrepareInputs(run *api.Run, example *api.Example) (api.ScoringInput, error) {
	if a.scorer.RequiresReference() && (example == nil || example.Outputs.Len() == 0) {
		return api.ScoringInput{}, &api.MissingReferenceError{Scorer: a.scorer.Name(), RunID: run.ID}
	}

	in := api.ScoringInput{}
	if v, ok := run.Outputs.First(); ok {
		in.Prediction = stringify(v)
	}
	if example != nil {
		if v, ok := example.Outputs.First(); ok {
			in.Reference = stringify(v)
		}
		if v, ok := example.Inputs.First(); ok {
			in.Input = stringify(v)
		}
	}
	return in, nil
}

// Evaluate prepares the scoring triple, invokes the wrapped scorer, and
// returns its result mapping with "key" set to the scorer's name. The
// scorer's own keys survive the merge except "key", which the adapter
// always owns. Validation and scorer errors propagate unchanged.
func (a *Adapter) Evaluate(ctx context.Context, run *api.Run, example *api.Example) (api.Result, error) {
	in, err := a.PrepareInputs(run, example)
	if err != nil {
		return nil, err
	}

	scored, err := a.scorer.Score(ctx, in)
	if err != nil {
		return nil, err
	}

	result := make(api.Result, len(scored)+1)
	for k, v := range scored {
		result[k] = v
	}
	result["key"] = a.scorer.Name()
	return result, nil
}

// AsRunEvaluator exposes Evaluate as the RunEvaluator capability consumed
// by the orchestration system. When a trace recorder was configured, the
// evaluator is wrapped so each invocation is recorded under the scorer's
// declared name.
func (a *Adapter) AsRunEvaluator() api.RunEvaluator {
	return trace.Wrap(a.recorder, a.scorer.Name(), api.RunEvaluatorFunc(a.Evaluate))
}

// stringify renders an extracted field value for scoring. Strings pass
// through untouched; composite values are JSON-encoded.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
