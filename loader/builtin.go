package loader

import (
	"fmt"

	"github.com/datar-psa/runeval/api"
	"github.com/datar-psa/runeval/embedding"
	"github.com/datar-psa/runeval/heuristic"
	"github.com/datar-psa/runeval/llmjudge"
)

func init() {
	builtins := map[string]Factory{
		"exact_match":        loadExactMatch,
		"regex_match":        loadRegexMatch,
		"embedding_distance": loadEmbeddingDistance,
		"qa":                 loadQA,
		"criteria":           loadCriteria,
		"moderation":         loadModeration,
	}
	for name, factory := range builtins {
		if err := Register(name, factory); err != nil {
			panic(err)
		}
	}
}

func loadExactMatch(opts Options) (api.StringScorer, error) {
	return heuristic.ExactMatch(heuristic.ExactMatchOptions{
		CaseInsensitive: boolOption(opts.Extra, "case_insensitive"),
		TrimWhitespace:  boolOption(opts.Extra, "trim_whitespace"),
	}), nil
}

func loadRegexMatch(opts Options) (api.StringScorer, error) {
	return heuristic.RegexMatch(heuristic.RegexMatchOptions{
		CaseInsensitive: boolOption(opts.Extra, "case_insensitive"),
	}), nil
}

func loadEmbeddingDistance(opts Options) (api.StringScorer, error) {
	if opts.Embedder == nil {
		return nil, fmt.Errorf("evaluator %q requires an embedder", "embedding_distance")
	}
	return embedding.Distance(opts.Embedder), nil
}

func loadQA(opts Options) (api.StringScorer, error) {
	if opts.LLM == nil {
		return nil, fmt.Errorf("evaluator %q requires an LLM generator", "qa")
	}
	return llmjudge.QA(opts.LLM), nil
}

func loadCriteria(opts Options) (api.StringScorer, error) {
	if opts.LLM == nil {
		return nil, fmt.Errorf("evaluator %q requires an LLM generator", "criteria")
	}
	criteria := stringOption(opts.Extra, "criteria")
	if criteria == "" {
		return nil, fmt.Errorf("evaluator %q requires a criteria description", "criteria")
	}
	return llmjudge.Criteria(opts.LLM, llmjudge.CriteriaOptions{Criteria: criteria}), nil
}

func loadModeration(opts Options) (api.StringScorer, error) {
	if opts.Moderation == nil {
		return nil, fmt.Errorf("evaluator %q requires a moderation provider", "moderation")
	}
	var categories []string
	if raw, ok := opts.Extra["categories"].([]any); ok {
		for _, c := range raw {
			name, ok := c.(string)
			if !ok {
				return nil, fmt.Errorf("evaluator %q: categories must be strings", "moderation")
			}
			categories = append(categories, name)
		}
	}
	return llmjudge.Moderation(opts.Moderation, llmjudge.ModerationOptions{
		Threshold:  floatOption(opts.Extra, "threshold"),
		Categories: categories,
	}), nil
}
