package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReferenceValue is returned when a reference value is required but not provided
	ErrNoReferenceValue = errors.New("reference value is required for this scorer")
	// ErrLLMGenerationFailed is returned when LLM generation fails
	ErrLLMGenerationFailed = errors.New("LLM generation failed")
)

// MissingReferenceError reports that a reference-requiring scorer was asked
// to evaluate a run with no usable dataset example. It is a hard validation
// failure: the evaluation is aborted before any scoring happens.
type MissingReferenceError struct {
	// Scorer is the declared name of the scorer that needed the reference
	Scorer string
	// RunID identifies the run whose evaluation was rejected
	RunID string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("evaluator %s requires a reference example from the dataset, but none was provided for run %s", e.Scorer, e.RunID)
}
