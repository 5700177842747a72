// Package ai asks a generative model for supportive feedback on journal
// entries. Every operation degrades to a fixed fallback so callers never see
// an AI failure.
package ai

import (
	"context"
	"errors"

	"tableflip.dev/positivity/pkg/entry"
)

var (
	ErrMissingCredentials = errors.New("ai: no API key configured")
	ErrEmptyResponse      = errors.New("ai: empty response")
	ErrSchema             = errors.New("ai: response does not match schema")
)

// Provider is a generative model backend. A call that succeeds without any
// text returns "" and a nil error; the Service decides what that means.
type Provider interface {
	Name() string
	// GenerateJSON asks for a JSON document conforming to schema and returns
	// it undecoded.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// SchemaType is a JSON schema primitive.
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema is a provider-neutral structured output description. Providers
// translate it into their native schema type.
type Schema struct {
	Type        SchemaType
	Description string
	Enum        []string
	Items       *Schema
	Properties  map[string]*Schema
	// Required lists property names in declaration order.
	Required []string
}

// AnalysisResult is the model's reading of a gratitude entry.
type AnalysisResult struct {
	Insight   string          `json:"insight"`
	Sentiment entry.Sentiment `json:"sentiment"`
	Tags      []string        `json:"tags"`
}

// ReframeSuggestion is one alternative perspective on a challenge.
type ReframeSuggestion struct {
	Perspective string `json:"perspective"`
	Explanation string `json:"explanation"`
}

type unavailable struct {
	name string
}

// Unavailable returns a provider whose every call fails with
// ErrMissingCredentials.
func Unavailable(name string) Provider {
	return unavailable{name: name}
}

func (u unavailable) Name() string { return u.name }

func (u unavailable) GenerateJSON(context.Context, string, *Schema) (string, error) {
	return "", ErrMissingCredentials
}

func (u unavailable) GenerateText(context.Context, string) (string, error) {
	return "", ErrMissingCredentials
}
