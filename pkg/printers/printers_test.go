package printers

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func init() {
	color.NoColor = true
}

func sampleEntries() []*entry.Entry {
	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	g := entry.New(&entry.Gratitude{Items: [3]string{"coffee", "sunshine", "a kind note"}}, at)
	g.Insight = "Small things add up."
	g.Sentiment = entry.Grateful
	g.Tags = []string{"Nature", "Friends"}
	r := entry.New(&entry.Reframe{Challenge: "flight delayed", Reframe: "extra reading time"}, at.Add(time.Hour))
	r.Sentiment = entry.Resilient
	r.Tags = []string{"Reframing", "Optimism"}
	return []*entry.Entry{r, g}
}

func TestHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.History()
	out := stripANSI(buf.String())
	if !strings.Contains(out, EmptyHistoryTitle) || !strings.Contains(out, EmptyHistoryHint) {
		t.Fatalf("missing empty state: %q", out)
	}
}

func TestHistoryRendersEntries(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 60}
	pp.History(sampleEntries()...)
	out := stripANSI(buf.String())

	for _, want := range []string{
		"Friday, March 15, 2024",
		"[Reframe]",
		"(resilient)",
		"The Challenge",
		"flight delayed",
		"New Perspective",
		"1. coffee",
		"3. a kind note",
		"Small things add up.",
		"#Nature #Friends",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "flight delayed") > strings.Index(out, "coffee") {
		t.Fatalf("entries printed out of order:\n%s", out)
	}
}

func TestEntryWrapsLongText(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 30}
	e := entry.New(&entry.Reframe{Challenge: strings.Repeat("word ", 20), Reframe: "ok"}, time.Now())
	pp.Entry(e)
	for _, line := range strings.Split(stripANSI(buf.String()), "\n") {
		if strings.Contains(line, "word") && len(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestInsights(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.Local)
	entries := sampleEntries()
	stats := app.Stats(entries, now)

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Insights(stats, entries, now)
	out := stripANSI(buf.String())

	for _, want := range []string{"Total Entries", "Day Streak", "● ○ ○ ○ ○", "grateful", "resilient", "March 2024", JournaledToday} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInsightsEmpty(t *testing.T) {
	now := time.Now()
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Insights(app.Stats(nil, now), nil, now)
	out := stripANSI(buf.String())
	if !strings.Contains(out, NoSentimentData) || !strings.Contains(out, NotJournaledToday) {
		t.Fatalf("unexpected empty insights:\n%s", out)
	}
	if strings.Contains(out, "Last Entry") {
		t.Fatalf("last entry should be absent:\n%s", out)
	}
}

func TestEntriesJSONUsesWireKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := EntriesJSON(&buf, sampleEntries()); err != nil {
		t.Fatalf("EntriesJSON: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[0]["type"] != "reframe" || got[1]["dateStr"] != "2024-03-15" {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
	if _, ok := got[1]["aiInsight"]; !ok {
		t.Fatalf("aiInsight missing: %s", buf.String())
	}
}

func TestEntriesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := EntriesYAML(&buf, sampleEntries()); err != nil {
		t.Fatalf("EntriesYAML: %v", err)
	}
	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(got) != 2 || got[0]["challenge"] != "flight delayed" {
		t.Fatalf("unexpected YAML:\n%s", buf.String())
	}
}

func TestStatsJSONNullLastEntry(t *testing.T) {
	var buf bytes.Buffer
	if err := StatsJSON(&buf, app.Stats(nil, time.Now())); err != nil {
		t.Fatalf("StatsJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"lastEntryDate": null`) {
		t.Fatalf("expected null lastEntryDate: %s", buf.String())
	}
}

func TestHistoryMarkdown(t *testing.T) {
	md := HistoryMarkdown(sampleEntries())
	for _, want := range []string{"# My Journey", "· Reframe", "**The Challenge:** flight delayed", "1. coffee", "> Small things add up.", "`#Nature`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
	if !strings.Contains(HistoryMarkdown(nil), EmptyHistoryTitle) {
		t.Fatal("empty markdown missing empty state")
	}

	rendered, err := RenderMarkdown(md, "notty", 60)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(rendered, "coffee") {
		t.Fatalf("rendered markdown lost content:\n%s", rendered)
	}
}
