package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
)

// EntriesJSON writes entries in their persisted wire shape.
func EntriesJSON(w io.Writer, entries []*entry.Entry) error {
	data, err := entry.MarshalList(entries)
	if err != nil {
		return err
	}
	var pretty any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pretty)
}

// entryView mirrors the wire keys for YAML output.
type entryView struct {
	ID        string   `yaml:"id"`
	Timestamp int64    `yaml:"timestamp"`
	DateStr   string   `yaml:"dateStr"`
	Type      string   `yaml:"type"`
	Items     []string `yaml:"items,omitempty"`
	Challenge string   `yaml:"challenge,omitempty"`
	Reframe   string   `yaml:"reframe,omitempty"`
	AIInsight string   `yaml:"aiInsight,omitempty"`
	Sentiment string   `yaml:"sentiment,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
}

func newEntryView(e *entry.Entry) entryView {
	v := entryView{
		ID:        e.ID,
		Timestamp: e.Created.Millis(),
		DateStr:   e.Date,
		Type:      string(e.Kind()),
		AIInsight: e.Insight,
		Sentiment: string(e.Sentiment),
		Tags:      e.Tags,
	}
	switch b := e.Body.(type) {
	case *entry.Gratitude:
		v.Items = b.Items[:]
	case *entry.Reframe:
		v.Challenge = b.Challenge
		v.Reframe = b.Reframe
	}
	return v
}

// EntriesYAML writes entries with the same keys as the wire shape.
func EntriesYAML(w io.Writer, entries []*entry.Entry) error {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			views = append(views, newEntryView(e))
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("printers: encode entries: %w", err)
	}
	return enc.Close()
}

// StatsView is the serialized form of app.UserStats.
type StatsView struct {
	TotalEntries   int            `json:"totalEntries" yaml:"totalEntries"`
	CurrentStreak  int            `json:"currentStreak" yaml:"currentStreak"`
	LastEntryDate  *string        `json:"lastEntryDate" yaml:"lastEntryDate"`
	JournaledToday bool           `json:"journaledToday" yaml:"journaledToday"`
	Sentiments     map[string]int `json:"sentiments" yaml:"sentiments"`
	Message        string         `json:"message" yaml:"message"`
}

func NewStatsView(s app.UserStats) StatsView {
	v := StatsView{
		TotalEntries:   s.TotalEntries,
		CurrentStreak:  s.CurrentStreak,
		JournaledToday: s.JournaledToday,
		Sentiments:     make(map[string]int, len(s.Sentiments)),
		Message:        TodayMessage(s),
	}
	if s.HasLastEntry() {
		last := s.LastEntryDate
		v.LastEntryDate = &last
	}
	for k, n := range s.Sentiments {
		v.Sentiments[string(k)] = n
	}
	return v
}

func StatsJSON(w io.Writer, s app.UserStats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewStatsView(s))
}

func StatsYAML(w io.Writer, s app.UserStats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewStatsView(s)); err != nil {
		return fmt.Errorf("printers: encode stats: %w", err)
	}
	return enc.Close()
}

// Format selects how runners render results.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatMarkdown
)

// Suggestions writes reframe suggestions as JSON or YAML.
func Suggestions(w io.Writer, format Format, suggestions []ai.ReframeSuggestion) error {
	if suggestions == nil {
		suggestions = []ai.ReframeSuggestion{}
	}
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(suggestions); err != nil {
			return fmt.Errorf("printers: encode suggestions: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(suggestions)
}
