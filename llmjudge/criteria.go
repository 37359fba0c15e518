package llmjudge

import (
	"context"
	"fmt"

	"github.com/datar-psa/runeval/api"
)

// CriteriaOptions configures the Criteria scorer
type CriteriaOptions struct {
	// Criteria describes what the prediction is judged against,
	// e.g. "Is the response helpful, concise, and polite?"
	Criteria string
}

// Criteria returns a scorer that asks an LLM for a yes/no verdict on
// whether the prediction meets the given criteria. No reference is needed;
// the judgment is made against the criteria description and the run input.
func Criteria(llm api.LLMGenerator, opts CriteriaOptions) api.StringScorer {
	return &criteriaScorer{llm: llm, opts: opts}
}

type criteriaScorer struct {
	llm  api.LLMGenerator
	opts CriteriaOptions
}

const criteriaPromptTemplate = `You are assessing a submitted answer against a set of criteria.

[BEGIN DATA]
[Input]: %s
[Submission]: %s
[Criteria]: %s
[END DATA]

Does the submission meet the criteria? Reason step by step, then give a
final verdict of Y or N.`

func (s *criteriaScorer) Name() string { return "criteria" }

func (s *criteriaScorer) RequiresReference() bool { return false }

func (s *criteriaScorer) Score(ctx context.Context, in api.ScoringInput) (api.Result, error) {
	if s.llm == nil {
		return nil, fmt.Errorf("LLM generator is required")
	}
	if s.opts.Criteria == "" {
		return nil, fmt.Errorf("criteria description is required")
	}

	prompt := fmt.Sprintf(criteriaPromptTemplate, in.Input, in.Prediction, s.opts.Criteria)

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"verdict": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"Y", "N"},
				"description": "Whether the submission meets the criteria",
			},
			"reasoning": map[string]interface{}{
				"type":        "string",
				"description": "Step by step reasoning for the verdict",
			},
		},
		"required": []string{"verdict", "reasoning"},
	}

	response, err := s.llm.StructuredGenerate(ctx, prompt, schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrLLMGenerationFailed, err)
	}

	verdict, ok := response["verdict"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to extract verdict from structured response")
	}
	reasoning, ok := response["reasoning"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to extract reasoning from structured response")
	}

	score := 0.0
	if verdict == "Y" {
		score = 1.0
	} else if verdict != "N" {
		return nil, fmt.Errorf("unexpected verdict %q in structured response", verdict)
	}

	return api.Result{
		"score":     score,
		"value":     verdict,
		"reasoning": reasoning,
	}, nil
}
