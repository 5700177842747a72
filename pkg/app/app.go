package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/store"
	"tableflip.dev/positivity/pkg/timeutil"
)

// MaxItemLength bounds each gratitude item, in characters.
const MaxItemLength = 300

// ReframeLabel tags every reframe entry and stands in for a missing
// perspective.
const ReframeLabel = "Reframing"

var (
	ErrBlankItem    = errors.New("app: gratitude items must not be blank")
	ErrItemTooLong  = errors.New("app: gratitude item too long")
	ErrBlankReframe = errors.New("app: reframe text must not be blank")
)

// Service provides high-level journal operations. It wraps the entry log and
// the AI service so the TUI and the CLI share logic.
type Service struct {
	Log    *store.Log
	AI     *ai.Service
	Wisdom *ai.Wisdom
	// Now defaults to time.Now.
	Now func() time.Time
}

// CurrentTime is the service clock.
func (s *Service) CurrentTime() time.Time {
	return s.now()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) ai() *ai.Service {
	if s.AI == nil {
		s.AI = ai.NewService(nil, 0)
	}
	return s.AI
}

// Entries lists the log, newest first.
func (s *Service) Entries() ([]*entry.Entry, error) {
	if s.Log == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Log.Entries(), nil
}

// Since lists entries dated within the last days days, newest first.
func (s *Service) Since(days int) ([]*entry.Entry, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	start := timeutil.WindowStart(s.now(), days)
	return lo.Filter(all, func(e *entry.Entry, _ int) bool {
		return e.Date >= start
	}), nil
}

// Stats summarizes the log as of now.
func (s *Service) Stats() (UserStats, error) {
	all, err := s.Entries()
	if err != nil {
		return UserStats{}, err
	}
	return Stats(all, s.now()), nil
}

// Reload re-reads the persisted log.
func (s *Service) Reload(ctx context.Context) error {
	if s.Log == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Log.Reload(ctx)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Log == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Log.Watch(ctx)
}

// DailyWisdom returns the session's wisdom line.
func (s *Service) DailyWisdom(ctx context.Context) string {
	if s.Wisdom == nil {
		s.Wisdom = ai.NewWisdom(s.ai())
	}
	return s.Wisdom.Get(ctx)
}

// CleanItems trims the items and checks each is non-blank and within
// MaxItemLength.
func CleanItems(items [3]string) ([3]string, error) {
	var out [3]string
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return out, ErrBlankItem
		}
		if len([]rune(item)) > MaxItemLength {
			return out, ErrItemTooLong
		}
		out[i] = item
	}
	return out, nil
}

// AnalyzeGratitude asks the AI service about items. It never fails.
func (s *Service) AnalyzeGratitude(ctx context.Context, items [3]string) ai.AnalysisResult {
	return s.ai().Analyze(ctx, items)
}

// RecordGratitude stores items with a finished analysis.
func (s *Service) RecordGratitude(ctx context.Context, items [3]string, analysis ai.AnalysisResult) (*entry.Entry, error) {
	if s.Log == nil {
		return nil, errors.New("app: no persistence configured")
	}
	items, err := CleanItems(items)
	if err != nil {
		return nil, err
	}
	e := entry.New(&entry.Gratitude{Items: items}, s.now())
	e.Insight = analysis.Insight
	e.Sentiment = analysis.Sentiment
	e.Tags = append([]string{}, analysis.Tags...)
	if _, err := s.Log.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// SaveGratitude analyzes and stores items in one step.
func (s *Service) SaveGratitude(ctx context.Context, items [3]string) (*entry.Entry, error) {
	cleaned, err := CleanItems(items)
	if err != nil {
		return nil, err
	}
	return s.RecordGratitude(ctx, cleaned, s.AnalyzeGratitude(ctx, cleaned))
}

// SuggestReframes asks the AI service for perspectives on challenge.
func (s *Service) SuggestReframes(ctx context.Context, challenge string) []ai.ReframeSuggestion {
	return s.ai().SuggestReframes(ctx, strings.TrimSpace(challenge))
}

// SaveReframe stores a reframe. An empty perspective means the user wrote
// their own.
func (s *Service) SaveReframe(ctx context.Context, challenge, reframe, perspective string) (*entry.Entry, error) {
	if s.Log == nil {
		return nil, errors.New("app: no persistence configured")
	}
	reframe = strings.TrimSpace(reframe)
	if reframe == "" {
		return nil, ErrBlankReframe
	}
	perspective = strings.TrimSpace(perspective)
	if perspective == "" {
		perspective = ReframeLabel
	}

	e := entry.New(&entry.Reframe{Challenge: strings.TrimSpace(challenge), Reframe: reframe}, s.now())
	e.Sentiment = entry.Resilient
	e.Tags = []string{ReframeLabel, perspective}
	if _, err := s.Log.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
