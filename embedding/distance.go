// Package embedding contains scorers backed by vector embeddings.
package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/datar-psa/runeval/api"
)

// Distance returns a scorer that measures how far the prediction is from
// the reference in embedding space. The score is a cosine distance
// normalized to [0, 1], where 0 means identical direction and 1 means
// opposite — lower is better.
func Distance(embedder api.Embedder) api.StringScorer {
	return &distanceScorer{embedder: embedder}
}

type distanceScorer struct {
	embedder api.Embedder
}

func (s *distanceScorer) Name() string { return "embedding_distance" }

func (s *distanceScorer) RequiresReference() bool { return true }

func (s *distanceScorer) Score(ctx context.Context, in api.ScoringInput) (api.Result, error) {
	if in.Reference == "" {
		return nil, api.ErrNoReferenceValue
	}
	if s.embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	predictionEmbed, err := s.embedder.Embed(ctx, in.Prediction)
	if err != nil {
		return nil, fmt.Errorf("failed to embed prediction: %w", err)
	}
	referenceEmbed, err := s.embedder.Embed(ctx, in.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to embed reference: %w", err)
	}

	similarity := cosineSimilarity(predictionEmbed, referenceEmbed)

	// Map cosine similarity [-1, 1] to a distance in [0, 1].
	distance := (1.0 - similarity) / 2.0
	if distance < 0 {
		distance = 0
	}
	if distance > 1 {
		distance = 1
	}

	return api.Result{
		"score":             distance,
		"cosine_similarity": similarity,
		"embedding_dim":     len(predictionEmbed),
	}, nil
}

// cosineSimilarity computes the cosine similarity between two vectors
// Returns a value between -1 and 1, where 1 means identical direction
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (normA * normB)
}
