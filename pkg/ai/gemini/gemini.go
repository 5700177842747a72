// Package gemini drives Google's Gemini models through generative-ai-go.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tableflip.dev/positivity/pkg/ai"
)

const (
	NAME         = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

type Driver struct {
	apiKey string
	model  string
	opts   []option.ClientOption
}

// New builds a driver. opts are passed to the genai client after the API key.
func New(apiKey, model string, opts ...option.ClientOption) *Driver {
	if model == "" {
		model = DefaultModel
	}
	return &Driver{apiKey: apiKey, model: model, opts: opts}
}

func (d *Driver) Name() string { return NAME }

func (d *Driver) GenerateJSON(ctx context.Context, prompt string, schema *ai.Schema) (string, error) {
	return d.generate(ctx, prompt, func(m *genai.GenerativeModel) {
		m.ResponseMIMEType = "application/json"
		m.ResponseSchema = ConvertSchema(schema)
	})
}

func (d *Driver) GenerateText(ctx context.Context, prompt string) (string, error) {
	return d.generate(ctx, prompt, nil)
}

func (d *Driver) generate(ctx context.Context, prompt string, configure func(*genai.GenerativeModel)) (string, error) {
	opts := append([]option.ClientOption{option.WithAPIKey(d.apiKey)}, d.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(d.model)
	if configure != nil {
		configure(model)
	}

	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", d.model))
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	// No candidate text is a valid, empty answer.
	return strings.TrimSpace(responseText(resp)), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}

// ConvertSchema maps the neutral schema onto genai's.
func ConvertSchema(s *ai.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       ConvertSchema(s.Items),
	}
	switch s.Type {
	case ai.TypeObject:
		out.Type = genai.TypeObject
	case ai.TypeArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if len(s.Enum) > 0 {
		out.Format = "enum"
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = ConvertSchema(prop)
		}
	}
	return out
}
