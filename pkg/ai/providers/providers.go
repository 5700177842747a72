// Package providers selects the configured AI backend.
package providers

import (
	"log/slog"
	"strings"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/ai/gemini"
	"tableflip.dev/positivity/pkg/ai/openai"
	"tableflip.dev/positivity/pkg/config"
)

// New returns the provider named by cfg. Without an API key, or for an
// unknown name, the result is an unavailable provider so every call falls
// back.
func New(cfg config.AI) ai.Provider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		name = gemini.NAME
	}

	if cfg.APIKey == "" {
		slog.Info("ai: no API key, fallback responses only", slog.String("provider", name))
		return ai.Unavailable(name)
	}

	switch name {
	case gemini.NAME:
		return gemini.New(cfg.APIKey, cfg.Model)
	case openai.NAME:
		return openai.New(cfg.APIKey, cfg.Endpoint, cfg.Model)
	default:
		slog.Warn("ai: unknown provider, fallback responses only", slog.String("provider", name))
		return ai.Unavailable(name)
	}
}

// NewService builds the service for cfg.
func NewService(cfg config.AI) *ai.Service {
	return ai.NewService(New(cfg), cfg.Timeout)
}
