package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/store"
)

type memoryPersistence struct {
	entries []*entry.Entry
	saveErr error
}

func (m *memoryPersistence) Load(context.Context) ([]*entry.Entry, error) {
	out := make([]*entry.Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memoryPersistence) Save(_ context.Context, entries []*entry.Entry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append([]*entry.Entry(nil), entries...)
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("memory: watch unsupported")
}

func (m *memoryPersistence) Location() string { return "memory" }

type stubProvider struct {
	json  string
	calls int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) GenerateJSON(context.Context, string, *ai.Schema) (string, error) {
	p.calls++
	return p.json, nil
}

func (p *stubProvider) GenerateText(context.Context, string) (string, error) {
	p.calls++
	return "Be here now.", nil
}

func newService(t *testing.T, now time.Time, p ai.Provider, existing ...*entry.Entry) (*Service, *memoryPersistence) {
	t.Helper()
	mem := &memoryPersistence{entries: existing}
	return &Service{
		Log: store.Open(context.Background(), mem),
		AI:  ai.NewService(p, 0),
		Now: func() time.Time { return now },
	}, mem
}

func TestSaveGratitudeStoresTrimmedItemsWithAnalysis(t *testing.T) {
	now := time.Date(2024, 5, 10, 20, 0, 0, 0, time.Local)
	p := &stubProvider{json: `{"insight":"Warm.","sentiment":"joyful","tags":["Friends"]}`}
	svc, mem := newService(t, now, p)

	e, err := svc.SaveGratitude(context.Background(), [3]string{"  tea ", "sun", "\tfriends\n"})
	if err != nil {
		t.Fatalf("SaveGratitude: %v", err)
	}
	g, ok := e.Gratitude()
	if !ok {
		t.Fatalf("expected gratitude body, got %T", e.Body)
	}
	if g.Items != [3]string{"tea", "sun", "friends"} {
		t.Fatalf("items not trimmed: %q", g.Items)
	}
	if e.Insight != "Warm." || e.Sentiment != entry.Joyful || len(e.Tags) != 1 || e.Tags[0] != "Friends" {
		t.Fatalf("analysis not attached: %+v", e)
	}
	if e.Date != "2024-05-10" {
		t.Fatalf("unexpected date %s", e.Date)
	}
	if len(mem.entries) != 1 || mem.entries[0].ID != e.ID {
		t.Fatalf("entry not persisted: %v", mem.entries)
	}
}

func TestSaveGratitudeRejectsBlankItems(t *testing.T) {
	p := &stubProvider{}
	svc, mem := newService(t, time.Now(), p)

	for _, items := range [][3]string{
		{"a", "", "c"},
		{"a", "   ", "c"},
		{"\n", "b", "c"},
	} {
		if _, err := svc.SaveGratitude(context.Background(), items); !errors.Is(err, ErrBlankItem) {
			t.Fatalf("items %q: expected ErrBlankItem, got %v", items, err)
		}
	}
	if len(mem.entries) != 0 {
		t.Fatalf("no entry should be created, got %d", len(mem.entries))
	}
	if p.calls != 0 {
		t.Fatalf("AI must not be called for invalid input, got %d calls", p.calls)
	}
}

func TestSaveGratitudeRejectsLongItems(t *testing.T) {
	svc, _ := newService(t, time.Now(), &stubProvider{})
	long := strings.Repeat("é", MaxItemLength+1)
	if _, err := svc.SaveGratitude(context.Background(), [3]string{long, "b", "c"}); !errors.Is(err, ErrItemTooLong) {
		t.Fatalf("expected ErrItemTooLong, got %v", err)
	}
	ok := strings.Repeat("é", MaxItemLength)
	if _, err := CleanItems([3]string{ok, "b", "c"}); err != nil {
		t.Fatalf("item at the limit rejected: %v", err)
	}
}

func TestSaveGratitudeFallbackOnAIFailure(t *testing.T) {
	svc, _ := newService(t, time.Now(), ai.Unavailable("gemini"))
	e, err := svc.SaveGratitude(context.Background(), [3]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("SaveGratitude: %v", err)
	}
	want := ai.FallbackAnalysis()
	if e.Insight != want.Insight || e.Sentiment != want.Sentiment || strings.Join(e.Tags, ",") != "Reflection" {
		t.Fatalf("expected fallback analysis, got %+v", e)
	}
}

func TestSaveGratitudePersistFailure(t *testing.T) {
	svc, mem := newService(t, time.Now(), ai.Unavailable("gemini"))
	mem.saveErr = errors.New("read-only")
	if _, err := svc.SaveGratitude(context.Background(), [3]string{"a", "b", "c"}); err == nil {
		t.Fatal("expected persist error")
	}
	if all, _ := svc.Entries(); len(all) != 0 {
		t.Fatalf("log should be unchanged, got %d", len(all))
	}
}

func TestSaveReframe(t *testing.T) {
	p := &stubProvider{}
	svc, _ := newService(t, time.Now(), p)

	e, err := svc.SaveReframe(context.Background(), " missed the bus ", " more time to think ", "Curiosity")
	if err != nil {
		t.Fatalf("SaveReframe: %v", err)
	}
	r, ok := e.Reframe()
	if !ok || r.Challenge != "missed the bus" || r.Reframe != "more time to think" {
		t.Fatalf("unexpected body %+v", e.Body)
	}
	if e.Sentiment != entry.Resilient {
		t.Fatalf("expected resilient, got %s", e.Sentiment)
	}
	if strings.Join(e.Tags, ",") != "Reframing,Curiosity" {
		t.Fatalf("unexpected tags %v", e.Tags)
	}
	if e.Insight != "" {
		t.Fatalf("reframe should have no insight, got %q", e.Insight)
	}
	if p.calls != 0 {
		t.Fatalf("saving a reframe must not call the AI, got %d", p.calls)
	}

	own, err := svc.SaveReframe(context.Background(), "x", "my own take", "")
	if err != nil {
		t.Fatalf("SaveReframe own: %v", err)
	}
	if strings.Join(own.Tags, ",") != "Reframing,Reframing" {
		t.Fatalf("unexpected tags for own reframe %v", own.Tags)
	}

	if _, err := svc.SaveReframe(context.Background(), "x", "  ", "Growth"); !errors.Is(err, ErrBlankReframe) {
		t.Fatalf("expected ErrBlankReframe, got %v", err)
	}

	all, _ := svc.Entries()
	if len(all) != 2 || all[0].ID != own.ID {
		t.Fatalf("expected newest first, got %v", all)
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)
	old := entry.New(&entry.Gratitude{Items: [3]string{"a", "b", "c"}}, now.AddDate(0, 0, -10))
	recent := entry.New(&entry.Gratitude{Items: [3]string{"d", "e", "f"}}, now.AddDate(0, 0, -2))
	svc, _ := newService(t, now, nil, recent, old)

	got, err := svc.Since(7)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(got) != 1 || got[0].ID != recent.ID {
		t.Fatalf("expected only recent entry, got %v", got)
	}
}

func TestDailyWisdomCached(t *testing.T) {
	p := &stubProvider{}
	svc, _ := newService(t, time.Now(), p)
	if got := svc.DailyWisdom(context.Background()); got != "Be here now." {
		t.Fatalf("unexpected wisdom %q", got)
	}
	svc.DailyWisdom(context.Background())
	if p.calls != 1 {
		t.Fatalf("expected one provider call, got %d", p.calls)
	}
}

func TestServiceWithoutLog(t *testing.T) {
	var svc Service
	if _, err := svc.Entries(); err == nil {
		t.Fatal("expected error without persistence")
	}
	if _, err := svc.SaveReframe(context.Background(), "a", "b", ""); err == nil {
		t.Fatal("expected error without persistence")
	}
}
