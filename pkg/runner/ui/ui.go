package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/positivity/pkg/app"
	tuiapp "tableflip.dev/positivity/pkg/tui/app"
)

// ErrNotTerminal is returned when the UI is started without a terminal.
var ErrNotTerminal = errors.New("ui: stdin and stdout must be a terminal; try `positivity write` instead")

type UI struct {
	Service *app.Service
	In      *os.File
	Out     *os.File

	// run starts the program; tests replace it.
	run func(ctx context.Context, svc *app.Service, opts ...tea.ProgramOption) error
}

func (u *UI) Do(ctx context.Context) error {
	in, out := u.In, u.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !isTerminal(in) || !isTerminal(out) {
		return ErrNotTerminal
	}
	run := u.run
	if run == nil {
		run = tuiapp.Run
	}
	return run(ctx, u.Service, tea.WithInput(io.Reader(in)), tea.WithOutput(io.Writer(out)))
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
