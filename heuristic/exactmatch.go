// Package heuristic contains rule-based scorers that need no external
// collaborators.
package heuristic

import (
	"context"
	"strings"

	"github.com/datar-psa/runeval/api"
)

// ExactMatchOptions configures the ExactMatch scorer
type ExactMatchOptions struct {
	// CaseInsensitive determines if the comparison should ignore case
	CaseInsensitive bool
	// TrimWhitespace determines if leading and trailing whitespace should be trimmed
	TrimWhitespace bool
}

// ExactMatch returns a scorer that checks if the prediction exactly matches
// the reference value.
func ExactMatch(opts ExactMatchOptions) api.StringScorer {
	return &exactMatchScorer{opts: opts}
}

type exactMatchScorer struct {
	opts ExactMatchOptions
}

func (s *exactMatchScorer) Name() string { return "exact_match" }

func (s *exactMatchScorer) RequiresReference() bool { return true }

func (s *exactMatchScorer) Score(ctx context.Context, in api.ScoringInput) (api.Result, error) {
	if in.Reference == "" {
		return nil, api.ErrNoReferenceValue
	}

	prediction := in.Prediction
	reference := in.Reference

	if s.opts.TrimWhitespace {
		prediction = strings.TrimSpace(prediction)
		reference = strings.TrimSpace(reference)
	}
	if s.opts.CaseInsensitive {
		prediction = strings.ToLower(prediction)
		reference = strings.ToLower(reference)
	}

	score := 0.0
	if prediction == reference {
		score = 1.0
	}

	return api.Result{
		"score":            score,
		"case_insensitive": s.opts.CaseInsensitive,
		"trim_whitespace":  s.opts.TrimWhitespace,
	}, nil
}
