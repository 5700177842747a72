package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/positivity/pkg/entry"
)

var ErrDuplicateID = errors.New("store: duplicate entry id")

// Log is the in-memory entry log, newest first. It is loaded once and
// re-persisted in full on every append. Access is single-threaded.
type Log struct {
	p       Persistence
	entries []*entry.Entry
}

// Open loads the log from p. Load failures never prevent startup: they are
// reported and the log starts empty.
func Open(ctx context.Context, p Persistence) *Log {
	l := &Log{p: p, entries: []*entry.Entry{}}
	if err := l.Reload(ctx); err != nil {
		slog.Warn("store: starting with an empty log",
			slog.String("location", p.Location()),
			slog.String("error", err.Error()))
	}
	return l
}

// Reload replaces the in-memory log with the persisted one. On failure the
// log is empty and the error is returned for reporting.
func (l *Log) Reload(ctx context.Context) error {
	entries, err := l.p.Load(ctx)
	if entries == nil {
		entries = []*entry.Entry{}
	}
	l.entries = entries
	return err
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []*entry.Entry {
	out := make([]*entry.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len is the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Append puts e at the head of the log and persists the full sequence. If
// saving fails the in-memory log is unchanged.
func (l *Log) Append(ctx context.Context, e *entry.Entry) ([]*entry.Entry, error) {
	if e == nil {
		return l.Entries(), errors.New("store: nil entry")
	}
	for _, existing := range l.entries {
		if existing.ID == e.ID {
			return l.Entries(), fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
	}

	next := make([]*entry.Entry, 0, len(l.entries)+1)
	next = append(next, e)
	next = append(next, l.entries...)
	if err := l.p.Save(ctx, next); err != nil {
		return l.Entries(), err
	}
	l.entries = next
	return l.Entries(), nil
}

// Watch forwards change notifications from the underlying persistence.
func (l *Log) Watch(ctx context.Context) (<-chan Event, error) {
	return l.p.Watch(ctx)
}

// Location describes where the log is persisted.
func (l *Log) Location() string {
	return l.p.Location()
}
