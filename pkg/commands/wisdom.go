package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/runner/wisdom"
)

func addWisdom(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "wisdom",
		Short: "Print a line of daily wisdom.",
		Example: `
positivity wisdom
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			s := wisdom.Wisdom{Service: svc, Format: format}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
