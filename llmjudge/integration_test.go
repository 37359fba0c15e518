package llmjudge_test

import (
	"context"
	"os"
	"testing"

	"github.com/datar-psa/runeval/api"
	"github.com/datar-psa/runeval/gemini"
	"github.com/datar-psa/runeval/internal/testutils"
	"github.com/datar-psa/runeval/llmjudge"
)

const judgeModel = "gemini-2.5-flash"

func skipWithoutProject(t *testing.T) {
	if os.Getenv("GOOGLE_PROJECT_ID") == "" {
		t.Skip("GOOGLE_PROJECT_ID not set; skipping integration test")
	}
}

func TestQA_Integration(t *testing.T) {
	skipWithoutProject(t)
	ctx := context.Background()

	generator := testutils.NewGeminiGenerator(t, testutils.DefaultGoogleTestConfig("qa"), judgeModel)
	scorer := llmjudge.QA(generator)

	result, err := scorer.Score(ctx, api.ScoringInput{
		Input:      "What is the capital of France?",
		Prediction: "The capital of France is Paris.",
		Reference:  "Paris",
	})
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	score, ok := result["score"].(float64)
	if !ok {
		t.Fatalf("score is %T, want float64", result["score"])
	}
	if score < 0.8 {
		t.Errorf("score = %v, want a correct answer to score high", score)
	}
}

func TestCriteria_Integration(t *testing.T) {
	skipWithoutProject(t)
	ctx := context.Background()

	generator := testutils.NewGeminiGenerator(t, testutils.DefaultGoogleTestConfig("criteria"), judgeModel)
	scorer := llmjudge.Criteria(generator, llmjudge.CriteriaOptions{
		Criteria: "Is the response polite and does it answer the question?",
	})

	result, err := scorer.Score(ctx, api.ScoringInput{
		Input:      "What is the capital of France?",
		Prediction: "Happy to help! The capital of France is Paris.",
	})
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	if result["value"] != "Y" {
		t.Errorf("value = %v, want Y for a polite correct answer", result["value"])
	}
}

func TestModeration_Integration(t *testing.T) {
	skipWithoutProject(t)
	ctx := context.Background()

	client := testutils.NewLanguageClient(t, testutils.DefaultGoogleTestConfig("moderation"))
	defer client.Close()

	provider := gemini.NewGoogleLanguageProvider(client)
	scorer := llmjudge.Moderation(provider, llmjudge.ModerationOptions{})

	result, err := scorer.Score(ctx, api.ScoringInput{
		Prediction: "Thank you for reaching out, I hope this helps.",
	})
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	if result["score"] != 1.0 {
		t.Errorf("score = %v, want benign content to be safe", result["score"])
	}
}
