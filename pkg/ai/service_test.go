package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/positivity/pkg/entry"
)

type fakeProvider struct {
	mu      sync.Mutex
	json    string
	text    string
	err     error
	block   bool
	calls   int
	prompts []string
	schemas []*Schema
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateJSON(ctx context.Context, prompt string, schema *Schema) (string, error) {
	f.record(prompt, schema)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.json, f.err
}

func (f *fakeProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.record(prompt, nil)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeProvider) record(prompt string, schema *Schema) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.schemas = append(f.schemas, schema)
}

var items = [3]string{"morning coffee", "a call with mum", "finished the report"}

func TestAnalyzeSuccess(t *testing.T) {
	p := &fakeProvider{json: `{"insight":"You notice small joys.","sentiment":"grateful","tags":["Family","Work"]}`}
	svc := NewService(p, 0)

	got := svc.Analyze(context.Background(), items)
	assert.Equal(t, AnalysisResult{Insight: "You notice small joys.", Sentiment: entry.Grateful, Tags: []string{"Family", "Work"}}, got)

	require.Len(t, p.prompts, 1)
	for _, item := range items {
		assert.Contains(t, p.prompts[0], item)
	}
	schema := p.schemas[0]
	require.NotNil(t, schema)
	assert.Equal(t, TypeObject, schema.Type)
	assert.Equal(t, []string{"insight", "sentiment", "tags"}, schema.Required)
	assert.NotContains(t, schema.Properties["sentiment"].Enum, "neutral")
	assert.Len(t, schema.Properties["sentiment"].Enum, 5)
}

func TestAnalyzeEmptyTagsAccepted(t *testing.T) {
	p := &fakeProvider{json: "```json\n{\"insight\":\"Nice.\",\"sentiment\":\"hopeful\",\"tags\":[]}\n```"}
	got := NewService(p, 0).Analyze(context.Background(), items)
	assert.Equal(t, entry.Hopeful, got.Sentiment)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestAnalyzeFallbackIsDeterministic(t *testing.T) {
	cases := map[string]*fakeProvider{
		"transport":       {err: errors.New("connection refused")},
		"credentials":     {err: ErrMissingCredentials},
		"empty":           {json: "  "},
		"not json":        {json: "I think you are great"},
		"bad sentiment":   {json: `{"insight":"x","sentiment":"neutral","tags":[]}`},
		"missing insight": {json: `{"sentiment":"joyful","tags":[]}`},
		"too many tags":   {json: `{"insight":"x","sentiment":"joyful","tags":["a","b","c","d"]}`},
		"blank tag":       {json: `{"insight":"x","sentiment":"joyful","tags":["a"," "]}`},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(p, 0)
			first := svc.Analyze(context.Background(), items)
			second := svc.Analyze(context.Background(), items)
			assert.Equal(t, FallbackAnalysis(), first)
			assert.Equal(t, first, second)
			assert.Equal(t, "Taking time to reflect on the good creates a ripple effect of positivity in your life. Well done.", first.Insight)
			assert.Equal(t, entry.Peaceful, first.Sentiment)
			assert.Equal(t, []string{"Reflection"}, first.Tags)
		})
	}
}

func TestFallbackReturnsFreshCopies(t *testing.T) {
	a := FallbackAnalysis()
	a.Tags[0] = "mutated"
	assert.Equal(t, []string{"Reflection"}, FallbackAnalysis().Tags)

	r := FallbackReframes()
	r[0].Perspective = "mutated"
	assert.Equal(t, "Growth", FallbackReframes()[0].Perspective)
}

func TestSuggestReframesSuccess(t *testing.T) {
	p := &fakeProvider{json: `[
		{"perspective":"Growth","explanation":"You are learning patience."},
		{"perspective":"Curiosity","explanation":"What if the delay helps?"},
		{"perspective":"Optimism","explanation":"Tomorrow is another try."}
	]`}
	got := NewService(p, 0).SuggestReframes(context.Background(), "missed the train")
	require.Len(t, got, 3)
	assert.Equal(t, "Curiosity", got[1].Perspective)
	assert.Contains(t, p.prompts[0], "missed the train")
	assert.Equal(t, TypeArray, p.schemas[0].Type)
}

func TestSuggestReframesEmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "   ", "[]"} {
		got := NewService(&fakeProvider{json: payload}, 0).SuggestReframes(context.Background(), "x")
		assert.NotNil(t, got, "payload %q", payload)
		assert.Empty(t, got, "payload %q", payload)
	}
}

func TestSuggestReframesFallback(t *testing.T) {
	cases := map[string]*fakeProvider{
		"transport":  {err: errors.New("503")},
		"not json":   {json: "{"},
		"object":     {json: `{"perspective":"Growth"}`},
		"two":        {json: `[{"perspective":"a","explanation":"b"},{"perspective":"c","explanation":"d"}]`},
		"incomplete": {json: `[{"perspective":"a","explanation":""},{"perspective":"c","explanation":"d"},{"perspective":"e","explanation":"f"}]`},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(p, 0)
			assert.Equal(t, FallbackReframes(), svc.SuggestReframes(context.Background(), "x"))
			assert.Equal(t, FallbackReframes(), svc.SuggestReframes(context.Background(), "x"))
		})
	}
}

func TestDailyWisdom(t *testing.T) {
	assert.Equal(t, "Small thanks, big days.", NewService(&fakeProvider{text: " Small thanks, big days.\n"}, 0).DailyWisdom(context.Background()))
	assert.Equal(t, FallbackWisdom, NewService(&fakeProvider{text: ""}, 0).DailyWisdom(context.Background()))
	assert.Equal(t, FallbackWisdom, NewService(&fakeProvider{err: errors.New("down")}, 0).DailyWisdom(context.Background()))
	assert.Equal(t, FallbackWisdom, NewService(nil, 0).DailyWisdom(context.Background()))
}

func TestTimeoutRoutesToFallback(t *testing.T) {
	p := &fakeProvider{block: true}
	svc := NewService(p, 10*time.Millisecond)

	start := time.Now()
	got := svc.Analyze(context.Background(), items)
	assert.Equal(t, FallbackAnalysis(), got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWisdomCachesFirstResult(t *testing.T) {
	p := &fakeProvider{text: "Notice the light."}
	w := NewWisdom(NewService(p, 0))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Notice the light.", w.Get(context.Background()))
		}()
	}
	wg.Wait()
	p.text = "Something else."
	assert.Equal(t, "Notice the light.", w.Get(context.Background()))
	assert.Equal(t, 1, p.calls)
}

func TestPromptsMentionPerspectives(t *testing.T) {
	prompt := reframePrompt("rain")
	for _, want := range []string{"Growth", "Curiosity", "Optimism"} {
		assert.True(t, strings.Contains(prompt, want), "missing %s", want)
	}
	assert.Equal(t, "joyful, grateful, peaceful, resilient, hopeful", joinSentiments())
}
