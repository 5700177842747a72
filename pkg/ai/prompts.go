package ai

import (
	"fmt"

	"github.com/samber/lo"

	"tableflip.dev/positivity/pkg/entry"
)

// analysisSentiments excludes neutral; the model must pick a positive emotion.
var analysisSentiments = lo.Filter(entry.Sentiments(), func(s entry.Sentiment, _ int) bool {
	return s != entry.Neutral
})

const wisdomPrompt = "Generate a short, unique, inspiring quote or piece of wisdom about the power of gratitude and positive thinking. Do not use famous clichés."

func analysisPrompt(items [3]string) string {
	return fmt.Sprintf(`Someone has just written down today's "Three Good Things":
1. %s
2. %s
3. %s

Respond with:
- insight: a warm, specific affirmation or psychological observation that reinforces their positive thinking, at most two sentences.
- sentiment: the dominant positive emotion, one of %s.
- tags: one to three short thematic labels such as "Family", "Nature" or "Achievement".`,
		items[0], items[1], items[2], joinSentiments())
}

func reframePrompt(challenge string) string {
	return fmt.Sprintf(`Someone is practicing cognitive reframing. The situation they find hard is: %q

Offer exactly three positive reframes, one per perspective, in this order:
- Growth: what can be learned, which skill or resilience this builds.
- Curiosity: swap judgment or fear for wonder ("I wonder why...", "What if...", "How might I...").
- Optimism: the silver lining, the bigger picture, or something to be grateful for.

Keep each explanation empathetic, practical and one or two sentences long.`, challenge)
}

func joinSentiments() string {
	return lo.Reduce(analysisSentiments, func(acc string, s entry.Sentiment, i int) string {
		if i == 0 {
			return string(s)
		}
		return acc + ", " + string(s)
	}, "")
}

func analysisSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"insight": {Type: TypeString, Description: "Supportive insight, at most two sentences."},
			"sentiment": {
				Type: TypeString,
				Enum: lo.Map(analysisSentiments, func(s entry.Sentiment, _ int) string { return string(s) }),
			},
			"tags": {
				Type:        TypeArray,
				Description: "Zero to three short thematic tags.",
				Items:       &Schema{Type: TypeString},
			},
		},
		Required: []string{"insight", "sentiment", "tags"},
	}
}

func reframeSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"perspective": {Type: TypeString, Description: "A single word label for the perspective, e.g. Growth, Curiosity or Optimism."},
				"explanation": {Type: TypeString, Description: "The reframed thought."},
			},
			Required: []string{"perspective", "explanation"},
		},
	}
}
