// Package runeval adapts string scorers into run evaluators: components
// that score one recorded execution trace against an optional dataset
// example and emit a keyed result mapping for the orchestration system.
package runeval

import (
	language "cloud.google.com/go/language/apiv1"
	"google.golang.org/genai"

	"github.com/datar-psa/runeval/api"
	"github.com/datar-psa/runeval/gemini"
	"github.com/datar-psa/runeval/loader"
)

type Run = api.Run
type Example = api.Example
type Field = api.Field
type Fields = api.Fields
type ScoringInput = api.ScoringInput
type Result = api.Result
type StringScorer = api.StringScorer
type RunEvaluator = api.RunEvaluator
type RunEvaluatorFunc = api.RunEvaluatorFunc
type MissingReferenceError = api.MissingReferenceError
type Config = loader.Config

var NewRun = api.NewRun
var LoadConfigFile = loader.LoadConfigFile

// GeminiOptions configures Google-backed scorer collaborators
type GeminiOptions struct {
	genaiClient    *genai.Client
	modelName      string
	embeddingModel string
	langClient     *language.Client
}

// WithGenaiClient sets the Gemini client used for LLM-judge scorers
func WithGenaiClient(client *genai.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.genaiClient = client
	}
}

// WithModelName sets the generation model name (e.g. "gemini-2.5-flash")
func WithModelName(modelName string) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.modelName = modelName
	}
}

// WithEmbeddingModel sets the embedding model name (e.g. "text-embedding-005")
func WithEmbeddingModel(modelName string) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.embeddingModel = modelName
	}
}

// WithLanguageClient sets the Google Cloud Language client used for moderation
func WithLanguageClient(client *language.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.langClient = client
	}
}

// GeminiCollaborators builds loader options backed by Google clients, so a
// configured evaluator can be constructed in one call:
//
//	adapter, err := runeval.FromConfig(cfg, runeval.GeminiCollaborators(
//		runeval.WithGenaiClient(client),
//		runeval.WithModelName("gemini-2.5-flash"),
//	)...)
//
// Collaborators are only wired when their client is provided.
func GeminiCollaborators(opts ...func(*GeminiOptions)) []func(*loader.Options) {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var loaderOptions []func(*loader.Options)
	if options.genaiClient != nil && options.modelName != "" {
		loaderOptions = append(loaderOptions, loader.WithLLMGenerator(gemini.NewGenerator(options.genaiClient, options.modelName)))
	}
	if options.genaiClient != nil && options.embeddingModel != "" {
		loaderOptions = append(loaderOptions, loader.WithEmbedder(gemini.NewEmbedder(options.genaiClient, options.embeddingModel)))
	}
	if options.langClient != nil {
		loaderOptions = append(loaderOptions, loader.WithModerationProvider(gemini.NewGoogleLanguageProvider(options.langClient)))
	}
	return loaderOptions
}
