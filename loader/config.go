package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects an evaluator and carries its scorer-specific options.
// Collaborator handles (LLM, embedder, moderation) are not serializable and
// are supplied programmatically via loader options instead.
type Config struct {
	// Evaluator names the scorer to load (e.g. "exact_match")
	Evaluator string `yaml:"evaluator" json:"evaluator"`
	// Options holds scorer-specific settings (e.g. case_insensitive)
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// LoadConfigFile reads an evaluator configuration from a YAML file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Evaluator == "" {
		return Config{}, fmt.Errorf("config %s: evaluator selector is required", path)
	}
	return cfg, nil
}
