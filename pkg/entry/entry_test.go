package entry

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesDateFromTimestamp(t *testing.T) {
	now := time.Date(2024, time.March, 9, 23, 59, 30, 123456789, time.Local)
	e := New(&Gratitude{Items: [3]string{"a", "b", "c"}}, now)

	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if e.Date != "2024-03-09" {
		t.Fatalf("expected local date 2024-03-09, got %s", e.Date)
	}
	if got := e.Created.Millis(); got != now.UnixMilli() {
		t.Fatalf("expected millisecond timestamp %d, got %d", now.UnixMilli(), got)
	}
	if e.Kind() != KindGratitude {
		t.Fatalf("expected gratitude kind, got %s", e.Kind())
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		e := New(&Reframe{Challenge: "c", Reframe: "r"}, time.Now())
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestRoundTripKeepsOptionalFields(t *testing.T) {
	now := time.Now()
	gratitude := New(&Gratitude{Items: [3]string{"coffee", "sunlight", "a call with mum"}}, now)
	gratitude.Insight = "Small joys add up."
	gratitude.Sentiment = Grateful
	gratitude.Tags = []string{"Family", "Nature"}

	reframe := New(&Reframe{Challenge: "missed the bus", Reframe: "a chance to walk"}, now.Add(time.Minute))
	reframe.Sentiment = Resilient
	reframe.Tags = []string{}

	bare := New(&Gratitude{Items: [3]string{"x", "y", "z"}}, now.Add(-time.Hour))

	in := []*Entry{reframe, gratitude, bare}
	data, err := MarshalList(in)
	require.NoError(t, err)

	out, err := UnmarshalList(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Present-but-empty tags stay distinct from absent tags.
	assert.NotNil(t, out[0].Tags)
	assert.Len(t, out[0].Tags, 0)
	assert.Nil(t, out[2].Tags)
}

func TestUnmarshalLegacyRecordDefaultsToGratitude(t *testing.T) {
	legacy := `[{"id":"abc","timestamp":1700000000000,"dateStr":"2023-11-14","items":["one","two","three"],"aiInsight":"nice","sentiment":"joyful","tags":["Reflection"]}]`

	out, err := UnmarshalList([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, out, 1)

	e := out[0]
	g, ok := e.Gratitude()
	require.True(t, ok, "expected gratitude body")
	assert.Equal(t, [3]string{"one", "two", "three"}, g.Items)
	assert.Equal(t, KindGratitude, e.Kind())
	assert.Equal(t, "2023-11-14", e.Date)
	assert.Equal(t, int64(1700000000000), e.Created.Millis())
	assert.Equal(t, Joyful, e.Sentiment)
}

func TestMarshalWritesTypeTag(t *testing.T) {
	e := New(&Reframe{Challenge: "c", Reframe: "r"}, time.Now())
	b, err := json.Marshal(e)
	require.NoError(t, err)
	if !strings.Contains(string(b), `"type":"reframe"`) {
		t.Fatalf("expected type tag, got %s", b)
	}
	if strings.Contains(string(b), `"items"`) {
		t.Fatalf("reframe should not carry items, got %s", b)
	}
}

func TestUnmarshalRejectsMalformedRecords(t *testing.T) {
	cases := map[string]string{
		"two items":    `{"id":"a","timestamp":1,"dateStr":"2024-01-01","items":["one","two"]}`,
		"unknown type": `{"id":"a","timestamp":1,"dateStr":"2024-01-01","type":"poem"}`,
		"bad json":     `{"id":`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var e Entry
			if err := json.Unmarshal([]byte(raw), &e); err == nil {
				t.Fatalf("expected error for %s", raw)
			}
		})
	}

	var e Entry
	err := json.Unmarshal([]byte(cases["unknown type"]), &e)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestUnmarshalListEmptyPayload(t *testing.T) {
	out, err := UnmarshalList([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestSentimentValid(t *testing.T) {
	for _, s := range Sentiments() {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if Sentiment("ecstatic").Valid() {
		t.Fatalf("unexpected valid sentiment")
	}
}
