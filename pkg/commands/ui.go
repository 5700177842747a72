package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
positivity ui
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			_, svc, err := bootstrap(ctx, true)
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
