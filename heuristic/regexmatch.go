package heuristic

import (
	"context"
	"fmt"
	"regexp"

	"github.com/datar-psa/runeval/api"
)

// RegexMatchOptions configures the RegexMatch scorer
type RegexMatchOptions struct {
	// CaseInsensitive compiles the pattern with the (?i) flag
	CaseInsensitive bool
}

// RegexMatch returns a scorer that treats the reference value as a regular
// expression and checks whether the prediction matches it.
func RegexMatch(opts RegexMatchOptions) api.StringScorer {
	return &regexMatchScorer{opts: opts}
}

type regexMatchScorer struct {
	opts RegexMatchOptions
}

func (s *regexMatchScorer) Name() string { return "regex_match" }

func (s *regexMatchScorer) RequiresReference() bool { return true }

func (s *regexMatchScorer) Score(ctx context.Context, in api.ScoringInput) (api.Result, error) {
	if in.Reference == "" {
		return nil, api.ErrNoReferenceValue
	}

	pattern := in.Reference
	if s.opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid reference pattern: %w", err)
	}

	score := 0.0
	if re.MatchString(in.Prediction) {
		score = 1.0
	}

	return api.Result{
		"score":   score,
		"pattern": in.Reference,
	}, nil
}
