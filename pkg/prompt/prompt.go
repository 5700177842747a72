// Package prompt collects journal input on the command line with promptui.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
)

const (
	// ChoiceOwn is returned by ChooseReframe when the user writes their own.
	ChoiceOwn = -1
	// ChoiceBack is returned by ChooseReframe to revisit the challenge.
	ChoiceBack = -2
)

var gratitudeLabels = [3]string{
	"1. Something good that happened today",
	"2. Another good thing",
	"3. One more good thing",
}

// Prompter reads from In and draws on Out; nil means the process stdio.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return os.Stdin
	}
	return io.NopCloser(p.In)
}

func (p *Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return os.Stdout
	}
	return nopCloser{p.Out}
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// ValidateItem rejects blank or overlong gratitude items.
func ValidateItem(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("empty")
	}
	if n := len([]rune(input)); n > app.MaxItemLength {
		return fmt.Errorf("%d characters, at most %d", n, app.MaxItemLength)
	}
	return nil
}

// ValidateText rejects blank input.
func ValidateText(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty")
	}
	return nil
}

// Gratitude asks for the three good things.
func (p *Prompter) Gratitude() ([3]string, error) {
	var items [3]string
	for i, label := range gratitudeLabels {
		prompt := promptui.Prompt{
			Label:     label,
			Templates: templates,
			Validate:  ValidateItem,
			Stdin:     p.stdin(),
			Stdout:    p.stdout(),
		}
		result, err := prompt.Run()
		if err != nil {
			return items, err
		}
		items[i] = result
	}
	return items, nil
}

// Line asks for one non-blank line.
func (p *Prompter) Line(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  ValidateText,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	return prompt.Run()
}

// Edit asks for text, pre-filled with initial.
func (p *Prompter) Edit(label, initial string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: true,
		Templates: templates,
		Validate:  ValidateText,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	return prompt.Run()
}

// Choice is one selectable row.
type Choice struct {
	Perspective string
	Explanation string
}

// Choices lists the selectable rows for suggestions.
func Choices(suggestions []ai.ReframeSuggestion) []Choice {
	out := make([]Choice, 0, len(suggestions)+2)
	for _, s := range suggestions {
		out = append(out, Choice{Perspective: s.Perspective, Explanation: s.Explanation})
	}
	out = append(out,
		Choice{Perspective: "Write my own", Explanation: "Start from a blank reframe."},
		Choice{Perspective: "Change the challenge", Explanation: "Go back and describe it again."},
	)
	return out
}

// ChooseReframe asks the user to pick a suggestion. It returns the index,
// ChoiceOwn or ChoiceBack.
func (p *Prompter) ChooseReframe(suggestions []ai.ReframeSuggestion) (int, error) {
	items := Choices(suggestions)
	sel := promptui.Select{
		HideHelp: true,
		Label:    "Choose a Path",
		Items:    items,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "➜  {{ .Perspective | bold }} {{ .Explanation | green }}",
			Inactive: "   {{ .Perspective }} {{ .Explanation | faint }}",
			Selected: "{{ .Perspective | bold }}",
		},
		Size:   len(items),
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, err
	}
	switch i {
	case len(suggestions):
		return ChoiceOwn, nil
	case len(suggestions) + 1:
		return ChoiceBack, nil
	default:
		return i, nil
	}
}

// ConfirmReframe shows the suggestion about to be saved and asks for a yes.
// Declining is not an error.
func (p *Prompter) ConfirmReframe(s ai.ReframeSuggestion) (bool, error) {
	out := p.stdout()
	_, _ = fmt.Fprintf(out, "%s\n  %s\n", s.Perspective, s.Explanation)
	prompt := promptui.Prompt{
		Label:     "Save this reframe",
		IsConfirm: true,
		Stdin:     p.stdin(),
		Stdout:    out,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
