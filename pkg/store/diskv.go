package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/positivity/pkg/entry"
)

const (
	// SlotKey names the single slot that holds the serialized entry log.
	SlotKey = "positivity_journal_entries"
	// corruptKey keeps the last undecodable payload so the next save does not
	// destroy it.
	corruptKey = SlotKey + ".corrupt"
	tempDir    = ".tmp"
)

var (
	// ErrDecode marks a persisted log that exists but cannot be decoded.
	ErrDecode = errors.New("store: decode entry log")
)

// Config locates the journal on disk.
type Config interface {
	BasePath() string
}

// Persistence defines the persistence contract for the entry log.
type Persistence interface {
	// Load reads the persisted log, newest first. A missing slot is an empty
	// log. Undecodable data yields an empty log and an error wrapping ErrDecode.
	Load(ctx context.Context) ([]*entry.Entry, error)
	// Save overwrites the slot with the full sequence.
	Save(ctx context.Context, entries []*entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
	Location() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// Flat layout: the slot is a single file directly under BasePath.
		Transform: func(string) []string { return []string{} },
		TempDir:   filepath.Join(basePath, tempDir),
		// No read cache; other processes may rewrite the slot.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Location() string {
	return filepath.Join(p.basePath, SlotKey)
}

func (p *persistence) Load(_ context.Context) ([]*entry.Entry, error) {
	val, err := p.d.Read(SlotKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*entry.Entry{}, nil
		}
		return []*entry.Entry{}, fmt.Errorf("store: read %s: %w", SlotKey, err)
	}
	entries, err := entry.UnmarshalList(val)
	if err != nil {
		if werr := p.d.Write(corruptKey, val); werr != nil {
			slog.Warn("store: keep undecodable log", slog.String("key", corruptKey), slog.String("error", werr.Error()))
		}
		return []*entry.Entry{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return entries, nil
}

func (p *persistence) Save(_ context.Context, entries []*entry.Entry) error {
	data, err := entry.MarshalList(entries)
	if err != nil {
		return fmt.Errorf("store: encode entry log: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, tempDir), 0o755); err != nil {
		return fmt.Errorf("store: ensure temp dir: %w", err)
	}
	if err := p.d.Write(SlotKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", SlotKey, err)
	}
	return nil
}
