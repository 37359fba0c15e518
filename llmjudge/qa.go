// Package llmjudge contains scorers that delegate judgment to an LLM or a
// moderation provider.
package llmjudge

import (
	"context"
	"fmt"

	"github.com/datar-psa/runeval/api"
)

// QA returns a scorer that uses an LLM to grade whether the prediction is
// factually consistent with the reference answer. The judge picks one of
// five graded choices which map onto a score in [0, 1].
func QA(llm api.LLMGenerator) api.StringScorer {
	return &qaScorer{llm: llm}
}

type qaScorer struct {
	llm api.LLMGenerator
}

const qaPromptTemplate = `You are grading an AI assistant's answer against an expert answer.

[BEGIN DATA]
[Question]: %s
[Expert Answer]: %s
[Submitted Answer]: %s
[END DATA]

Compare the factual content of the submitted answer with the expert answer.
Ignore differences in style, grammar, or punctuation.

Choose the option that best describes the submission:
(A) The submitted answer contains all the same details as the expert answer.
(B) The submitted answer is a superset of the expert answer and is fully consistent with it.
(C) The submitted answer and the expert answer differ, but the differences don't matter for factuality.
(D) The submitted answer is a subset of the expert answer and is fully consistent with it.
(E) There is a disagreement between the submitted answer and the expert answer.`

// qaChoiceScores maps a graded choice onto a score in [0, 1].
var qaChoiceScores = map[string]float64{
	"A": 1.0,
	"B": 0.8,
	"C": 0.6,
	"D": 0.4,
	"E": 0.0,
}

func (s *qaScorer) Name() string { return "qa" }

func (s *qaScorer) RequiresReference() bool { return true }

func (s *qaScorer) Score(ctx context.Context, in api.ScoringInput) (api.Result, error) {
	if in.Reference == "" {
		return nil, api.ErrNoReferenceValue
	}
	if s.llm == nil {
		return nil, fmt.Errorf("LLM generator is required")
	}

	prompt := fmt.Sprintf(qaPromptTemplate, in.Input, in.Reference, in.Prediction)

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"choice": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"A", "B", "C", "D", "E"},
				"description": "The grading choice",
			},
			"explanation": map[string]interface{}{
				"type":        "string",
				"description": "Step by step reasoning for the choice",
			},
		},
		"required": []string{"choice", "explanation"},
	}

	response, err := s.llm.StructuredGenerate(ctx, prompt, schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrLLMGenerationFailed, err)
	}

	choice, ok := response["choice"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to extract choice from structured response")
	}
	explanation, ok := response["explanation"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to extract explanation from structured response")
	}
	score, ok := qaChoiceScores[choice]
	if !ok {
		return nil, fmt.Errorf("unexpected choice %q in structured response", choice)
	}

	return api.Result{
		"score":       score,
		"choice":      choice,
		"explanation": explanation,
	}, nil
}
