package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/positivity/pkg/ai"
)

type fakeServer struct {
	t        *testing.T
	content  string
	status   int
	requests []map[string]any
}

func (f *fakeServer) handler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)
	var req map[string]any
	require.NoError(f.t, json.Unmarshal(body, &req))
	f.requests = append(f.requests, req)

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		return
	}
	resp := map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  req["model"],
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": f.content},
		}},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(f.t, json.NewEncoder(w).Encode(resp))
}

func newDriver(t *testing.T, f *fakeServer) *Driver {
	t.Helper()
	f.t = t
	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)
	return New("sk-test", srv.URL+"/v1", "")
}

func TestGenerateJSONObjectSchema(t *testing.T) {
	f := &fakeServer{content: `{"insight":"Lovely.","sentiment":"joyful","tags":["Family"]}`}
	d := newDriver(t, f)

	schema := &ai.Schema{
		Type:       ai.TypeObject,
		Properties: map[string]*ai.Schema{"insight": {Type: ai.TypeString}},
		Required:   []string{"insight"},
	}
	got, err := d.GenerateJSON(context.Background(), "hello", schema)
	require.NoError(t, err)
	assert.JSONEq(t, f.content, got)

	require.Len(t, f.requests, 1)
	req := f.requests[0]
	assert.Equal(t, DefaultModel, req["model"])
	format, ok := req["response_format"].(map[string]any)
	require.True(t, ok, "response_format missing: %v", req)
	assert.Equal(t, "json_schema", format["type"])
	js := format["json_schema"].(map[string]any)
	assert.Equal(t, true, js["strict"])
}

func TestGenerateJSONUnwrapsArrays(t *testing.T) {
	f := &fakeServer{content: `{"result":[{"perspective":"Growth","explanation":"x"}]}`}
	d := newDriver(t, f)

	schema := &ai.Schema{Type: ai.TypeArray, Items: &ai.Schema{Type: ai.TypeString}}
	got, err := d.GenerateJSON(context.Background(), "hello", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"perspective":"Growth","explanation":"x"}]`, got)
}

func TestGenerateJSONMissingEnvelope(t *testing.T) {
	f := &fakeServer{content: `{"other":[]}`}
	d := newDriver(t, f)

	_, err := d.GenerateJSON(context.Background(), "hello", &ai.Schema{Type: ai.TypeArray})
	assert.True(t, errors.Is(err, ai.ErrSchema), "got %v", err)
}

func TestGenerateTextServerError(t *testing.T) {
	f := &fakeServer{status: http.StatusInternalServerError}
	d := newDriver(t, f)

	_, err := d.GenerateText(context.Background(), "hello")
	require.Error(t, err)
}

func TestGenerateTextEmpty(t *testing.T) {
	f := &fakeServer{content: "   "}
	d := newDriver(t, f)

	got, err := d.GenerateText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGenerateJSONEmptyReply(t *testing.T) {
	f := &fakeServer{content: ""}
	d := newDriver(t, f)

	got, err := d.GenerateJSON(context.Background(), "hello", &ai.Schema{Type: ai.TypeArray})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestEmptyReplyYieldsNoSuggestions(t *testing.T) {
	f := &fakeServer{content: ""}
	svc := ai.NewService(newDriver(t, f), 0)

	got := svc.SuggestReframes(context.Background(), "my boss yelled at me")
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Len(t, f.requests, 1)
}

func TestEmptyReplyFallsBackForAnalysis(t *testing.T) {
	f := &fakeServer{content: ""}
	svc := ai.NewService(newDriver(t, f), 0)

	got := svc.Analyze(context.Background(), [3]string{"tea", "sun", "a call"})
	assert.Equal(t, ai.FallbackAnalysis(), got)
	assert.Equal(t, ai.FallbackWisdom, svc.DailyWisdom(context.Background()))
}

func TestDefinitionWrapsNonObjects(t *testing.T) {
	def, wrapped := Definition(&ai.Schema{Type: ai.TypeArray, Items: &ai.Schema{Type: ai.TypeString}})
	assert.True(t, wrapped)
	assert.Equal(t, []string{wrapKey}, def.Required)
	assert.Contains(t, def.Properties, wrapKey)

	_, wrapped = Definition(&ai.Schema{Type: ai.TypeObject})
	assert.False(t, wrapped)
}
