// Package entry defines the journal entry model and its persisted JSON shape.
package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind tags which exercise produced an entry.
type Kind string

const (
	KindGratitude Kind = "gratitude"
	KindReframe   Kind = "reframe"
)

// Sentiment is the dominant emotion attached to an entry.
type Sentiment string

const (
	Joyful    Sentiment = "joyful"
	Grateful  Sentiment = "grateful"
	Peaceful  Sentiment = "peaceful"
	Resilient Sentiment = "resilient"
	Hopeful   Sentiment = "hopeful"
	Neutral   Sentiment = "neutral"
)

// Sentiments lists every sentiment in display order.
func Sentiments() []Sentiment {
	return []Sentiment{Joyful, Grateful, Peaceful, Resilient, Hopeful, Neutral}
}

// Valid reports whether s is one of the known sentiments.
func (s Sentiment) Valid() bool {
	for _, known := range Sentiments() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Sentiment) String() string { return string(s) }

// Body is the exercise-specific part of an entry, either *Gratitude or *Reframe.
type Body interface {
	Kind() Kind
	isBody()
}

// Gratitude holds the Three Good Things of a day.
type Gratitude struct {
	Items [3]string
}

func (*Gratitude) Kind() Kind { return KindGratitude }
func (*Gratitude) isBody()    {}

// Reframe holds a challenge and the perspective chosen for it.
type Reframe struct {
	Challenge string
	Reframe   string
}

func (*Reframe) Kind() Kind { return KindReframe }
func (*Reframe) isBody()    {}

// Entry is one immutable journal record.
type Entry struct {
	ID        string
	Created   Timestamp
	Date      string
	Body      Body
	Insight   string
	Sentiment Sentiment
	Tags      []string
}

var (
	ErrUnknownKind = errors.New("entry: unknown kind")
	ErrItems       = errors.New("entry: gratitude needs exactly three items")
)

// New stamps a fresh entry for body at now.
func New(body Body, now time.Time) *Entry {
	created := NewTimestamp(now)
	return &Entry{
		ID:      uuid.NewString(),
		Created: created,
		Date:    created.DateString(),
		Body:    body,
	}
}

// Kind returns the entry's kind, defaulting to gratitude.
func (e *Entry) Kind() Kind {
	if e == nil || e.Body == nil {
		return KindGratitude
	}
	return e.Body.Kind()
}

// Gratitude returns the gratitude body, if that is the variant.
func (e *Entry) Gratitude() (*Gratitude, bool) {
	g, ok := e.Body.(*Gratitude)
	return g, ok
}

// Reframe returns the reframe body, if that is the variant.
func (e *Entry) Reframe() (*Reframe, bool) {
	r, ok := e.Body.(*Reframe)
	return r, ok
}

func (e *Entry) String() string {
	switch b := e.Body.(type) {
	case *Reframe:
		return fmt.Sprintf("%s reframe: %s -> %s", e.Date, b.Challenge, b.Reframe)
	case *Gratitude:
		return fmt.Sprintf("%s gratitude: %s", e.Date, strings.Join(b.Items[:], "; "))
	default:
		return fmt.Sprintf("%s entry %s", e.Date, e.ID)
	}
}

// record is the persisted shape shared with earlier versions of the journal.
type record struct {
	ID        string    `json:"id"`
	Timestamp Timestamp `json:"timestamp"`
	DateStr   string    `json:"dateStr"`
	Type      Kind      `json:"type,omitempty"`
	Items     []string  `json:"items,omitempty"`
	Challenge *string   `json:"challenge,omitempty"`
	Reframe   *string   `json:"reframe,omitempty"`
	AIInsight *string   `json:"aiInsight,omitempty"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	r := record{
		ID:        e.ID,
		Timestamp: e.Created,
		DateStr:   e.Date,
		Sentiment: e.Sentiment,
	}
	switch b := e.Body.(type) {
	case *Gratitude:
		r.Type = KindGratitude
		r.Items = append([]string(nil), b.Items[:]...)
	case *Reframe:
		r.Type = KindReframe
		challenge, reframe := b.Challenge, b.Reframe
		r.Challenge = &challenge
		r.Reframe = &reframe
	case nil:
		return nil, fmt.Errorf("entry %s: missing body", e.ID)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, b)
	}
	if e.Insight != "" {
		insight := e.Insight
		r.AIInsight = &insight
	}
	if e.Tags != nil {
		tags := append([]string{}, e.Tags...)
		r.Tags = &tags
	}
	return json.Marshal(r)
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	out := Entry{
		ID:        r.ID,
		Created:   r.Timestamp,
		Date:      r.DateStr,
		Sentiment: r.Sentiment,
	}
	if out.Date == "" && !out.Created.IsZero() {
		out.Date = out.Created.DateString()
	}
	if r.AIInsight != nil {
		out.Insight = *r.AIInsight
	}
	if r.Tags != nil {
		out.Tags = append([]string{}, (*r.Tags)...)
	}

	switch r.Type {
	case "", KindGratitude:
		// Records written before reframing existed carry no type.
		if len(r.Items) != 3 {
			return fmt.Errorf("%w: %s has %d", ErrItems, r.ID, len(r.Items))
		}
		g := &Gratitude{}
		copy(g.Items[:], r.Items)
		out.Body = g
	case KindReframe:
		rf := &Reframe{}
		if r.Challenge != nil {
			rf.Challenge = *r.Challenge
		}
		if r.Reframe != nil {
			rf.Reframe = *r.Reframe
		}
		out.Body = rf
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Type)
	}

	*e = out
	return nil
}

// MarshalList serialises a log, newest first.
func MarshalList(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return json.Marshal(entries)
}

// UnmarshalList decodes a persisted log. An empty payload is an empty log.
func UnmarshalList(data []byte) ([]*Entry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []*Entry{}, nil
	}
	var list []*Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	out := make([]*Entry, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
