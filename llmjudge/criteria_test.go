package llmjudge

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/datar-psa/runeval/api"
)

func TestCriteria_Unit(t *testing.T) {
	ctx := context.Background()
	opts := CriteriaOptions{Criteria: "Is the response polite and helpful?"}

	tests := []struct {
		name        string
		llmResponse string
		llmErr      error
		prediction  string
		wantErr     error
		wantAnyErr  bool
		wantScore   float64
		wantValue   string
	}{
		{
			name:        "criteria met",
			llmResponse: `{"verdict": "Y", "reasoning": "The response is courteous and answers the question."}`,
			prediction:  "Happy to help! The capital is Paris.",
			wantScore:   1.0,
			wantValue:   "Y",
		},
		{
			name:        "criteria not met",
			llmResponse: `{"verdict": "N", "reasoning": "The response is dismissive."}`,
			prediction:  "Look it up yourself.",
			wantScore:   0.0,
			wantValue:   "N",
		},
		{
			name:       "llm error",
			llmErr:     fmt.Errorf("API error"),
			prediction: "anything",
			wantErr:    api.ErrLLMGenerationFailed,
		},
		{
			name:        "missing verdict field",
			llmResponse: `{"reasoning": "no verdict"}`,
			prediction:  "anything",
			wantAnyErr:  true,
		},
		{
			name:        "unexpected verdict",
			llmResponse: `{"verdict": "MAYBE", "reasoning": "hedging"}`,
			prediction:  "anything",
			wantAnyErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := Criteria(&mockLLMGenerator{response: tt.llmResponse, err: tt.llmErr}, opts)
			result, err := scorer.Score(ctx, api.ScoringInput{Prediction: tt.prediction, Input: "What is the capital?"})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Score() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantAnyErr {
				if err == nil {
					t.Fatal("Score() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Score() unexpected error: %v", err)
			}
			if result["score"] != tt.wantScore {
				t.Errorf("score = %v, want %v", result["score"], tt.wantScore)
			}
			if result["value"] != tt.wantValue {
				t.Errorf("value = %v, want %v", result["value"], tt.wantValue)
			}
		})
	}
}

func TestCriteria_Validation(t *testing.T) {
	ctx := context.Background()

	if _, err := Criteria(nil, CriteriaOptions{Criteria: "x"}).Score(ctx, api.ScoringInput{}); err == nil {
		t.Error("Score() accepted a nil LLM generator")
	}
	if _, err := Criteria(&mockLLMGenerator{}, CriteriaOptions{}).Score(ctx, api.ScoringInput{}); err == nil {
		t.Error("Score() accepted empty criteria")
	}

	scorer := Criteria(&mockLLMGenerator{}, CriteriaOptions{Criteria: "x"})
	if scorer.Name() != "criteria" {
		t.Errorf("Name() = %q, want criteria", scorer.Name())
	}
	if scorer.RequiresReference() {
		t.Error("criteria should not require a reference")
	}
}
