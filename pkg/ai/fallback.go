package ai

import "tableflip.dev/positivity/pkg/entry"

const (
	fallbackInsight = "Taking time to reflect on the good creates a ripple effect of positivity in your life. Well done."
	// FallbackWisdom is shown whenever no wisdom can be generated.
	FallbackWisdom = "Gratitude turns what we have into enough."
)

// FallbackAnalysis returns the analysis used when the model cannot be reached
// or answers out of shape. Each call returns a fresh value.
func FallbackAnalysis() AnalysisResult {
	return AnalysisResult{
		Insight:   fallbackInsight,
		Sentiment: entry.Peaceful,
		Tags:      []string{"Reflection"},
	}
}

// FallbackReframes returns the canned Growth, Curiosity and Optimism
// perspectives. Each call returns a fresh slice.
func FallbackReframes() []ReframeSuggestion {
	return []ReframeSuggestion{
		{Perspective: "Growth", Explanation: "This challenge is an opportunity to develop new skills and resilience."},
		{Perspective: "Curiosity", Explanation: "I wonder what new possibilities might open up if I let go of my expectations?"},
		{Perspective: "Optimism", Explanation: "In the grand scheme of things, this is a stepping stone, not a stumbling block."},
	}
}
