// Package key prints the legend for entry badges.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
)

var meanings = map[entry.Sentiment]string{
	entry.Joyful:    "delight, fun, a lift in energy",
	entry.Grateful:  "appreciation for people, places or things",
	entry.Peaceful:  "calm, rest, contentment",
	entry.Resilient: "growth through difficulty; every reframe",
	entry.Hopeful:   "looking forward, new possibilities",
	entry.Neutral:   "too little to go on",
}

type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Sentiment"), bold.Sprint("Meaning"))
	for _, s := range entry.Sentiments() {
		tbl.AddRow(printers.SentimentColor(s).Sprint(s), meanings[s])
	}
	_, _ = fmt.Fprintln(out, color.New(color.Bold, color.Underline).Sprint("Sentiments"))
	_, _ = fmt.Fprintln(out, tbl)

	_, _ = fmt.Fprintln(out, color.New(color.Bold, color.Underline).Sprint("\nStreak"))
	_, _ = fmt.Fprintln(out, "●  a journaled day   ○  a day to come")
	return nil
}
