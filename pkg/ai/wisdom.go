package ai

import (
	"context"
	"sync"
)

// Wisdom fetches the daily wisdom once and serves it for the rest of the
// session.
type Wisdom struct {
	svc  *Service
	once sync.Once
	text string
}

func NewWisdom(svc *Service) *Wisdom {
	return &Wisdom{svc: svc}
}

// Get returns the cached line, fetching it on first use.
func (w *Wisdom) Get(ctx context.Context) string {
	w.once.Do(func() {
		w.text = w.svc.DailyWisdom(ctx)
	})
	return w.text
}
