package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

const maxTags = 3

// Service turns journal text into feedback. Its methods never fail: on any
// provider, decode or shape error they log and return the fallback.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService wraps p. A non-positive timeout leaves calls unbounded.
func NewService(p Provider, timeout time.Duration) *Service {
	if p == nil {
		p = Unavailable("none")
	}
	return &Service{provider: p, timeout: timeout}
}

// ProviderName names the backing provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) logFailure(op string, err error) {
	slog.Error("ai: request failed, using fallback",
		slog.String("op", op),
		slog.String("provider", s.provider.Name()),
		slog.String("error", err.Error()))
}

// Analyze reads the three good things and returns an insight, a sentiment and
// up to three tags.
func (s *Service) Analyze(ctx context.Context, items [3]string) AnalysisResult {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.provider.GenerateJSON(ctx, analysisPrompt(items), analysisSchema())
	if err != nil {
		s.logFailure("analyze", err)
		return FallbackAnalysis()
	}
	res, err := decodeAnalysis(raw)
	if err != nil {
		s.logFailure("analyze", err)
		return FallbackAnalysis()
	}
	return res
}

func decodeAnalysis(raw string) (AnalysisResult, error) {
	var res AnalysisResult
	raw = stripFence(raw)
	if raw == "" {
		return res, ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return res, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	res.Insight = strings.TrimSpace(res.Insight)
	if res.Insight == "" {
		return res, fmt.Errorf("%w: missing insight", ErrSchema)
	}
	if !lo.Contains(analysisSentiments, res.Sentiment) {
		return res, fmt.Errorf("%w: sentiment %q", ErrSchema, res.Sentiment)
	}
	if len(res.Tags) > maxTags {
		return res, fmt.Errorf("%w: %d tags", ErrSchema, len(res.Tags))
	}
	res.Tags = lo.Map(res.Tags, func(t string, _ int) string { return strings.TrimSpace(t) })
	if lo.Contains(res.Tags, "") {
		return res, fmt.Errorf("%w: blank tag", ErrSchema)
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	return res, nil
}

// SuggestReframes asks for exactly three perspectives on challenge. A model
// that answers with nothing yields an empty slice; anything malformed yields
// the fallback perspectives.
func (s *Service) SuggestReframes(ctx context.Context, challenge string) []ReframeSuggestion {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.provider.GenerateJSON(ctx, reframePrompt(challenge), reframeSchema())
	if err != nil {
		s.logFailure("reframe", err)
		return FallbackReframes()
	}
	out, err := decodeReframes(raw)
	if err != nil {
		s.logFailure("reframe", err)
		return FallbackReframes()
	}
	return out
}

func decodeReframes(raw string) ([]ReframeSuggestion, error) {
	raw = stripFence(raw)
	if raw == "" {
		return []ReframeSuggestion{}, nil
	}
	var out []ReframeSuggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if len(out) == 0 {
		return []ReframeSuggestion{}, nil
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("%w: %d suggestions", ErrSchema, len(out))
	}
	for i := range out {
		out[i].Perspective = strings.TrimSpace(out[i].Perspective)
		out[i].Explanation = strings.TrimSpace(out[i].Explanation)
		if out[i].Perspective == "" || out[i].Explanation == "" {
			return nil, fmt.Errorf("%w: suggestion %d incomplete", ErrSchema, i)
		}
	}
	return out, nil
}

// DailyWisdom returns one short inspirational line.
func (s *Service) DailyWisdom(ctx context.Context) string {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.provider.GenerateText(ctx, wisdomPrompt)
	if err != nil {
		s.logFailure("wisdom", err)
		return FallbackWisdom
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.logFailure("wisdom", ErrEmptyResponse)
		return FallbackWisdom
	}
	return text
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
