package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/runner/insights"
)

func addInsights(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "insights",
		Aliases: []string{"stats", "streak"},
		Short:   "Show your streak and emotional landscape.",
		Example: `
positivity insights
positivity insights -o yaml
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
			s := insights.Insights{Service: svc, Format: format}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
