package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/runner/history"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"history", "journey"},
		Short:   "View your journal, newest first.",
		Example: `
positivity log
positivity log --last 2w
positivity log -o markdown
positivity log --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			_, svc, err := bootstrap(ctx, false)
			if err != nil {
				return oo.HandleError(err)
			}
			s := history.History{
				Service: svc,
				Last:    lo.Last,
				Follow:  lo.Follow,
				Format:  format,
				Style:   lo.Style,
				ShowID:  lo.IDs,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddMarkdownOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
