package heuristic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/datar-psa/runeval/api"
)

func TestRegexMatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		opts       RegexMatchOptions
		prediction string
		reference  string
		wantErr    error
		wantScore  float64
	}{
		{
			name:       "iso date pattern matches",
			prediction: "The delivery will be made on 2024-01-05",
			reference:  `.*\b\d{4}-\d{2}-\d{2}\b.*`,
			wantScore:  1.0,
		},
		{
			name:       "iso date pattern does not match us format",
			prediction: "The delivery will be made on 01-05-2024",
			reference:  `.*\b\d{4}-\d{2}-\d{2}\b.*`,
			wantScore:  0.0,
		},
		{
			name:       "alternation over date formats matches",
			prediction: "The delivery will be made on 01-05-2024",
			reference:  strings.Join([]string{`.*\b\d{4}-\d{2}-\d{2}\b.*`, `.*\b\d{2}-\d{2}-\d{4}\b.*`}, "|"),
			wantScore:  1.0,
		},
		{
			name:       "case sensitive by default",
			prediction: "PARIS",
			reference:  "paris",
			wantScore:  0.0,
		},
		{
			name:       "case insensitive option",
			opts:       RegexMatchOptions{CaseInsensitive: true},
			prediction: "PARIS",
			reference:  "paris",
			wantScore:  1.0,
		},
		{
			name:       "no reference value",
			prediction: "anything",
			reference:  "",
			wantErr:    api.ErrNoReferenceValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := RegexMatch(tt.opts)
			result, err := scorer.Score(ctx, api.ScoringInput{Prediction: tt.prediction, Reference: tt.reference})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Score() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Score() unexpected error: %v", err)
			}
			if result["score"] != tt.wantScore {
				t.Errorf("score = %v, want %v", result["score"], tt.wantScore)
			}
		})
	}
}

func TestRegexMatch_InvalidPattern(t *testing.T) {
	scorer := RegexMatch(RegexMatchOptions{})
	_, err := scorer.Score(context.Background(), api.ScoringInput{Prediction: "x", Reference: "(unclosed"})
	if err == nil || !strings.Contains(err.Error(), "invalid reference pattern") {
		t.Errorf("Score() error = %v, want invalid reference pattern", err)
	}
}
