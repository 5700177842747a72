package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON. Shorthand for --output=json.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "text",
		"Output format. One of 'text', 'json' or 'yaml'.")
}

// AddMarkdownOutputArg is AddOutputArg for commands that can also render
// markdown.
func AddMarkdownOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON. Shorthand for --output=json.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "text",
		"Output format. One of 'text', 'json', 'yaml' or 'markdown'.")
}

// Format resolves the selected output format.
func (o *OutputOptions) Format() (printers.Format, error) {
	if o.JSON {
		return printers.FormatJSON, nil
	}
	switch strings.ToLower(strings.TrimSpace(o.Output)) {
	case "", "text":
		return printers.FormatText, nil
	case "json":
		return printers.FormatJSON, nil
	case "yaml", "yml":
		return printers.FormatYAML, nil
	case "markdown", "md":
		return printers.FormatMarkdown, nil
	default:
		return printers.FormatText, fmt.Errorf("unknown output format %q", o.Output)
	}
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
