// Command demo seeds the configured journal with sample entries and prints
// them.
package main

import (
	"context"
	"log"
	"time"

	"tableflip.dev/positivity/pkg/config"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/runner/ui"
	"tableflip.dev/positivity/pkg/store"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	p, err := store.Load(cfg)
	if err != nil {
		log.Fatalf("open journal: %v", err)
	}
	l := store.Open(ctx, p)

	demo := ui.StaticDemo(time.Now())
	// Append oldest first so the log ends up newest first.
	for i := len(demo) - 1; i >= 0; i-- {
		if _, err := l.Append(ctx, demo[i]); err != nil {
			log.Fatalf("append: %v", err)
		}
	}

	pp := &printers.PrettyPrint{}
	pp.TitleWithCount("My Journey", l.Len())
	pp.History(l.Entries()...)
}
