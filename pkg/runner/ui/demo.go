package ui

import (
	"time"

	"tableflip.dev/positivity/pkg/entry"
)

// StaticDemo returns a week of sample entries ending at now, newest first.
func StaticDemo(now time.Time) []*entry.Entry {
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	e := []*entry.Entry{
		entry.New(&entry.Gratitude{Items: [3]string{"a slow breakfast", "a call from an old friend", "the rain stopped for my walk"}}, day(0)),
		entry.New(&entry.Reframe{Challenge: "My presentation ran over time.", Reframe: "I had more to share than I expected; next time I will trim it."}, day(1)),
		entry.New(&entry.Gratitude{Items: [3]string{"fresh bread", "finishing a hard bug", "a quiet evening"}}, day(1).Add(-2*time.Hour)),
		entry.New(&entry.Gratitude{Items: [3]string{"sunlight in the kitchen", "a kind email", "my favourite song on the radio"}}, day(2)),
		entry.New(&entry.Gratitude{Items: [3]string{"a long nap", "soup", "a good book"}}, day(4)),
	}

	e[0].Insight = "Connection and small comforts shaped your day."
	e[0].Sentiment = entry.Joyful
	e[0].Tags = []string{"Connection", "Nature"}

	e[1].Sentiment = entry.Resilient
	e[1].Tags = []string{"Reframing", "Growth"}

	e[2].Insight = "Accomplishment and rest balanced each other."
	e[2].Sentiment = entry.Peaceful
	e[2].Tags = []string{"Work", "Rest"}

	e[3].Insight = "You noticed warmth in ordinary moments."
	e[3].Sentiment = entry.Grateful
	e[3].Tags = []string{"Kindness"}

	e[4].Insight = "Rest is worth being grateful for too."
	e[4].Sentiment = entry.Hopeful
	e[4].Tags = []string{"Rest"}

	return e
}
