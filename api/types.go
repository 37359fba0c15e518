package api

import (
	"context"

	"github.com/google/uuid"
)

// Run is a recorded execution trace produced by the orchestration system.
// Evaluators only ever read runs; they never mutate them.
type Run struct {
	// ID is an opaque identifier for this run
	ID string `json:"id"`
	// Name is an optional display name for the traced operation
	Name string `json:"name,omitempty"`
	// RunType classifies the traced operation (e.g. "chain", "llm", "tool")
	RunType string `json:"run_type,omitempty"`
	// Inputs holds the inputs the traced operation received
	Inputs Fields `json:"inputs,omitempty"`
	// Outputs holds the outputs the traced operation produced
	Outputs Fields `json:"outputs,omitempty"`
	// Extra carries additional orchestrator-owned metadata
	Extra map[string]any `json:"extra,omitempty"`
}

// NewRun creates a run with a fresh identifier and the given outputs.
func NewRun(outputs Fields) *Run {
	return &Run{ID: uuid.NewString(), Outputs: outputs}
}

// Example is a labeled dataset entry. A nil *Example means no reference
// data exists for the run being evaluated.
type Example struct {
	// ID is an opaque identifier for this dataset entry
	ID string `json:"id"`
	// Inputs holds the inputs the example was recorded with
	Inputs Fields `json:"inputs,omitempty"`
	// Outputs holds the expected outputs
	Outputs Fields `json:"outputs,omitempty"`
}

// ScoringInput carries the triple extracted from a run/example pair.
//
// An empty string means the field was absent: the run had no outputs, or no
// example (or example field) was available. Scorers that cannot work without
// a particular field should return an error rather than score the zero value.
type ScoringInput struct {
	// Prediction is the value being scored, taken from the run's outputs
	Prediction string
	// Reference is the expected value, taken from the example's outputs
	Reference string
	// Input is the original input, taken from the example's inputs
	Input string
}

// Result is the mapping a scorer produces, re-emitted by the adapter with a
// "key" entry naming the scorer that produced it.
type Result map[string]any

// StringScorer scores a prediction string against an optional reference and
// input. Implementations declare up front whether they need a reference so
// the adapter can fail fast before scoring.
//
// Thread-safety is the implementation's concern; the adapter itself adds no
// shared mutable state around Score calls.
type StringScorer interface {
	// Name identifies the scorer; it becomes the "key" of every result
	Name() string
	// RequiresReference reports whether scoring is meaningless without a
	// reference value from a dataset example
	RequiresReference() bool
	// Score evaluates the extracted triple and returns a result mapping
	Score(ctx context.Context, in ScoringInput) (Result, error)
}

// RunEvaluator is the boundary operation the orchestration system consumes:
// score one run, optionally against a dataset example.
type RunEvaluator interface {
	EvaluateRun(ctx context.Context, run *Run, example *Example) (Result, error)
}

// RunEvaluatorFunc adapts a plain function to the RunEvaluator interface.
type RunEvaluatorFunc func(ctx context.Context, run *Run, example *Example) (Result, error)

// EvaluateRun implements RunEvaluator.
func (f RunEvaluatorFunc) EvaluateRun(ctx context.Context, run *Run, example *Example) (Result, error) {
	return f(ctx, run, example)
}

// LLMGenerator is an interface for generating text using an LLM
// This interface must be implemented by library consumers
// A Gemini implementation is provided in the gemini subpackage
type LLMGenerator interface {
	// StructuredGenerate generates structured data based on the provided prompt and JSON schema
	// schema must be a valid JSON schema (map[string]interface{})
	// Returns the generated data as a map[string]interface{} or an error
	StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error)
}

// Embedder generates vector embeddings for text
type Embedder interface {
	// Embed generates an embedding vector for the given text
	// Returns a normalized vector (length = 1) suitable for cosine similarity
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ModerationCategories contains all supported moderation category names
// These are developer-friendly names that map to Google Cloud Natural Language API categories
var ModerationCategories []string = []string{
	"Toxic",
	"Derogatory",
	"Violent",
	"Sexual",
	"Insult",
	"Profanity",
	"DeathHarmTragedy",
	"FirearmsWeapons",
	"PublicSafety",
	"Health",
	"ReligionBelief",
	"IllicitDrugs",
	"WarConflict",
	"Finance",
	"Politics",
	"Legal",
}

// ModerationCategory represents a safety category with confidence score
type ModerationCategory struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ModerationResult represents the result of content moderation
type ModerationResult struct {
	Categories []ModerationCategory `json:"categories"`
}

// ModerationProvider is an interface for content moderation
// This interface must be implemented by library consumers
// A Google Cloud Natural Language implementation is provided in the gemini subpackage
type ModerationProvider interface {
	// Moderate analyzes content for safety and returns moderation results
	// Returns the moderation result or an error
	Moderate(ctx context.Context, content string) (*ModerationResult, error)
}
