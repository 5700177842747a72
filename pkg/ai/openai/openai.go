// Package openai drives OpenAI-compatible chat completion endpoints.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"tableflip.dev/positivity/pkg/ai"
)

const (
	NAME         = "openai"
	DefaultModel = "gpt-4o-mini"

	// wrapKey holds non-object results; strict structured output requires an
	// object at the root.
	wrapKey = "result"
)

type Driver struct {
	client *openai.Client
	model  string
}

// New builds a driver. proxy overrides the API base URL for compatible
// endpoints.
func New(token, proxy, model string) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}
	if model == "" {
		model = DefaultModel
	}
	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (d *Driver) Name() string { return NAME }

func (d *Driver) GenerateJSON(ctx context.Context, prompt string, schema *ai.Schema) (string, error) {
	def, wrapped := Definition(schema)
	req := d.request(prompt)
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   "journal_feedback",
			Schema: &def,
			Strict: true,
		},
	}

	content, err := d.complete(ctx, req)
	if err != nil {
		return "", err
	}
	if content == "" || !wrapped {
		return content, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ai.ErrSchema, err)
	}
	inner, ok := envelope[wrapKey]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ai.ErrSchema, wrapKey)
	}
	return string(inner), nil
}

func (d *Driver) GenerateText(ctx context.Context, prompt string) (string, error) {
	return d.complete(ctx, d.request(prompt))
}

func (d *Driver) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

func (d *Driver) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", req.Model))
	resp, err := d.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: completion: %w", err)
	}
	// A reply without text is a valid, empty answer.
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Definition translates the neutral schema. Non-object roots are wrapped in a
// single-property object; wrapped reports whether that happened.
func Definition(s *ai.Schema) (def jsonschema.Definition, wrapped bool) {
	def = convert(s)
	if s != nil && s.Type == ai.TypeObject {
		return def, false
	}
	return jsonschema.Definition{
		Type:                 jsonschema.Object,
		Properties:           map[string]jsonschema.Definition{wrapKey: def},
		Required:             []string{wrapKey},
		AdditionalProperties: false,
	}, true
}

func convert(s *ai.Schema) jsonschema.Definition {
	if s == nil {
		return jsonschema.Definition{Type: jsonschema.String}
	}
	def := jsonschema.Definition{
		Description: s.Description,
		Enum:        s.Enum,
	}
	switch s.Type {
	case ai.TypeObject:
		def.Type = jsonschema.Object
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = convert(prop)
		}
		def.Required = s.Required
		def.AdditionalProperties = false
	case ai.TypeArray:
		def.Type = jsonschema.Array
		items := convert(s.Items)
		def.Items = &items
	default:
		def.Type = jsonschema.String
	}
	return def
}
