package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/prompt"
	"tableflip.dev/positivity/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "write [good thing] [good thing] [good thing]",
		Aliases: []string{"gratitude", "g"},
		Short:   "Record three good things from today.",
		Long: options.Wrap80("Record three good things that happened today. Each is trimmed " +
			"and may be up to 300 characters. The entry is analyzed for an insight, a " +
			"sentiment and a few tags before it is saved."),
		Example: `
positivity write "morning coffee" "a call with mom" "finished the report"
positivity write -i
positivity write --json "sun" "rain" "a good book"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return err
			}
			ctx := context.Background()
			_, svc, err := bootstrap(ctx, false)
			if err != nil {
				return oo.HandleError(err)
			}
			s := write.Write{
				Service:     svc,
				Items:       args,
				Interactive: i.Interactive,
				Prompter:    &prompt.Prompter{},
				Format:      format,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
