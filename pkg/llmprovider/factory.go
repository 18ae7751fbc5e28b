package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"focusflow/config"
	"focusflow/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// A provider that fails to initialize is skipped; the error lists every skipped one
// only when none succeeded.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var skipped []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(skipped))
		for i, e := range skipped {
			msgs[i] = e.Error()
		}
		return nil, skipped, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, skipped, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
