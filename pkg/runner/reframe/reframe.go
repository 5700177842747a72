package reframe

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/prompt"
)

// Reframe walks a challenge through the three reframing stages.
type Reframe struct {
	Service   *app.Service
	Challenge string
	// Pick selects suggestion 1..3; 0 prints the suggestions only.
	Pick int
	// Own skips the suggestions; Text must then be set.
	Own bool
	// Text replaces the chosen explanation before saving.
	Text string
	// Yes saves a picked suggestion without asking first.
	Yes         bool
	Interactive bool
	Prompter    *prompt.Prompter
	// Confirm is asked before a picked suggestion is saved as worded; nil
	// uses Prompter.
	Confirm func(ai.ReframeSuggestion) (bool, error)
	Format  printers.Format
	Out     io.Writer
}

func (r *Reframe) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Reframe) Do(ctx context.Context) error {
	c := controller.New(r.Service)
	c.Navigate(controller.ViewReframe)
	if r.Interactive {
		return r.interactive(ctx, c)
	}

	c.Reframe.Challenge = r.Challenge
	if r.Own {
		if strings.TrimSpace(r.Text) == "" {
			return fmt.Errorf("reframe: %w: --text is required with --own", controller.ErrIncomplete)
		}
		// No suggestions are needed to write your own.
		c.FinishSuggestions(nil)
		if err := c.WriteOwn(); err != nil {
			return err
		}
		c.Reframe.Text = r.Text
		return r.save(ctx, c)
	}

	if err := c.RequestSuggestions(ctx); err != nil {
		return fmt.Errorf("reframe: %w: describe the challenge", err)
	}
	suggestions := c.Reframe.Suggestions()
	if r.Pick == 0 {
		return r.printSuggestions(suggestions)
	}
	if err := c.Choose(r.Pick - 1); err != nil {
		return fmt.Errorf("reframe: --pick must be between 1 and %d: %w", len(suggestions), err)
	}
	if strings.TrimSpace(r.Text) != "" {
		c.Reframe.Text = r.Text
		return r.save(ctx, c)
	}
	// A pick comes from a fresh reply; show it before saving.
	if !r.Yes {
		ok, err := r.confirm(suggestions[r.Pick-1])
		if err != nil {
			return fmt.Errorf("reframe: confirm (use --yes to skip): %w", err)
		}
		if !ok {
			_, _ = color.New(color.Faint).Fprintln(r.out(), "Nothing saved.")
			return nil
		}
	}
	return r.save(ctx, c)
}

func (r *Reframe) confirm(s ai.ReframeSuggestion) (bool, error) {
	if r.Confirm != nil {
		return r.Confirm(s)
	}
	p := r.Prompter
	if p == nil {
		p = &prompt.Prompter{}
	}
	if r.Format != printers.FormatText {
		// Keep structured output on stdout parseable.
		p = &prompt.Prompter{In: p.In, Out: os.Stderr}
	}
	return p.ConfirmReframe(s)
}

func (r *Reframe) interactive(ctx context.Context, c *controller.Controller) error {
	if r.Prompter == nil {
		r.Prompter = &prompt.Prompter{}
	}
	c.Reframe.Challenge = r.Challenge
	for {
		switch c.Reframe.Stage() {
		case controller.StageChallenge:
			if strings.TrimSpace(c.Reframe.Challenge) == "" {
				challenge, err := r.Prompter.Line("What's weighing on you?")
				if err != nil {
					return err
				}
				c.Reframe.Challenge = challenge
			}
			if err := c.RequestSuggestions(ctx); err != nil {
				return err
			}
		case controller.StageChoose:
			choice, err := r.Prompter.ChooseReframe(c.Reframe.Suggestions())
			if err != nil {
				return err
			}
			switch choice {
			case prompt.ChoiceBack:
				c.Back()
				c.Reframe.Challenge = ""
			case prompt.ChoiceOwn:
				if err := c.WriteOwn(); err != nil {
					return err
				}
			default:
				if err := c.Choose(choice); err != nil {
					return err
				}
			}
		case controller.StageEdit:
			text, err := r.Prompter.Edit("Internalize It", c.Reframe.Text)
			if err != nil {
				return err
			}
			c.Reframe.Text = text
			return r.save(ctx, c)
		}
	}
}

func (r *Reframe) save(ctx context.Context, c *controller.Controller) error {
	e, err := c.SaveReframe(ctx)
	if err != nil {
		return err
	}
	out := r.out()
	switch r.Format {
	case printers.FormatJSON:
		return printers.EntriesJSON(out, []*entry.Entry{e})
	case printers.FormatYAML:
		return printers.EntriesYAML(out, []*entry.Entry{e})
	}
	_, _ = color.New(color.Bold, color.FgGreen).Fprintln(out, "Perspective embraced.")
	_, _ = fmt.Fprintln(out)
	(&printers.PrettyPrint{Out: out}).Entry(e)
	return nil
}

func (r *Reframe) printSuggestions(suggestions []ai.ReframeSuggestion) error {
	out := r.out()
	switch r.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Suggestions(out, r.Format, suggestions)
	}
	pp := &printers.PrettyPrint{Out: out}
	pp.Title("Choose a Path")
	if len(suggestions) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, "No suggestions this time. Use --own --text to write your own.")
		return nil
	}
	for i, s := range suggestions {
		_, _ = color.New(color.Bold).Fprintf(out, "%d. %s\n", i+1, s.Perspective)
		_, _ = fmt.Fprintf(out, "   %s\n", s.Explanation)
	}
	pp.NewLine()
	_, _ = color.New(color.Faint).Fprintln(out, "Save one with --pick N (confirmed before saving), optionally rewording it with --text.")
	return nil
}
