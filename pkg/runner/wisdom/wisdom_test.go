package wisdom

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/printers"
)

func init() {
	color.NoColor = true
}

func TestWisdomFallsBack(t *testing.T) {
	svc := &app.Service{AI: ai.NewService(ai.Unavailable("gemini"), 0)}
	var out bytes.Buffer
	if err := (&Wisdom{Service: svc, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Daily Wisdom\n") {
		t.Fatalf("missing heading:\n%s", got)
	}
	flat := strings.Join(strings.Fields(got), " ")
	if !strings.Contains(flat, ai.FallbackWisdom) {
		t.Fatalf("expected fallback wisdom, got:\n%s", got)
	}
}

func TestWisdomJSON(t *testing.T) {
	svc := &app.Service{AI: ai.NewService(ai.Unavailable("gemini"), 0)}
	var out bytes.Buffer
	if err := (&Wisdom{Service: svc, Format: printers.FormatJSON, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if got["wisdom"] != ai.FallbackWisdom || got["provider"] != "gemini" {
		t.Fatalf("unexpected JSON: %v", got)
	}
}
