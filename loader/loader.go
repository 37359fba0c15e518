// Package loader resolves evaluator selectors ("exact_match",
// "embedding_distance", ...) into concrete StringScorer instances. The
// built-in scorers are registered at init time; consumers can register
// their own factories under new names.
package loader

import (
	"fmt"
	"sync"

	"github.com/datar-psa/runeval/api"
)

// Options carries the collaborators and scorer-specific settings a factory
// may need. Which fields are required depends on the scorer being loaded.
type Options struct {
	// LLM backs LLM-judge scorers ("qa", "criteria")
	LLM api.LLMGenerator
	// Embedder backs the "embedding_distance" scorer
	Embedder api.Embedder
	// Moderation backs the "moderation" scorer
	Moderation api.ModerationProvider
	// Extra holds scorer-specific options from the configuration
	Extra map[string]any
}

// WithLLMGenerator sets the LLM generator collaborator
func WithLLMGenerator(llm api.LLMGenerator) func(*Options) {
	return func(opts *Options) {
		opts.LLM = llm
	}
}

// WithEmbedder sets the embedder collaborator
func WithEmbedder(embedder api.Embedder) func(*Options) {
	return func(opts *Options) {
		opts.Embedder = embedder
	}
}

// WithModerationProvider sets the moderation collaborator
func WithModerationProvider(provider api.ModerationProvider) func(*Options) {
	return func(opts *Options) {
		opts.Moderation = provider
	}
}

// WithExtra merges scorer-specific options on top of any configured ones
func WithExtra(extra map[string]any) func(*Options) {
	return func(opts *Options) {
		if opts.Extra == nil {
			opts.Extra = make(map[string]any, len(extra))
		}
		for k, v := range extra {
			opts.Extra[k] = v
		}
	}
}

// Factory constructs a scorer from resolved options.
type Factory func(opts Options) (api.StringScorer, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

// Register adds a factory under name. Registering a name twice is an error.
func Register(name string, factory Factory) error {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("evaluator %q already registered", name)
	}
	registry[name] = factory
	return nil
}

// Load resolves the configured evaluator name into a scorer instance.
// Configuration options are applied first, then the functional options, so
// programmatic settings win over file-level ones.
func Load(cfg Config, opts ...func(*Options)) (api.StringScorer, error) {
	if cfg.Evaluator == "" {
		return nil, fmt.Errorf("evaluator selector is required")
	}

	mu.RLock()
	factory, ok := registry[cfg.Evaluator]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", cfg.Evaluator)
	}

	options := Options{}
	if len(cfg.Options) > 0 {
		WithExtra(cfg.Options)(&options)
	}
	for _, opt := range opts {
		opt(&options)
	}
	return factory(options)
}

// boolOption reads a boolean scorer option, tolerating absent keys.
func boolOption(extra map[string]any, key string) bool {
	v, ok := extra[key].(bool)
	return ok && v
}

// stringOption reads a string scorer option, returning "" when absent.
func stringOption(extra map[string]any, key string) string {
	v, _ := extra[key].(string)
	return v
}

// floatOption reads a numeric scorer option, tolerating the int values
// YAML decoding produces for whole numbers.
func floatOption(extra map[string]any, key string) float64 {
	switch v := extra[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
