package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// ProviderConfig selects and configures a completion provider.
type ProviderConfig struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// New builds the completer named by cfg.Provider. An empty provider
// name selects anthropic.
func New(cfg ProviderConfig, logger *zap.Logger) (Completer, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "anthropic"
	}

	switch provider {
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: anthropic API key is empty", ErrNotConfigured)
		}
		logger.Info("using anthropic provider", zap.String("model", cfg.Model))
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Temperature, logger), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: openai API key is empty", ErrNotConfigured)
		}
		logger.Info("using openai provider", zap.String("model", cfg.Model))
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Temperature, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
