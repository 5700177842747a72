package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
positivity info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			cfg, svc, err := bootstrap(ctx, false)
			if err != nil && cfg == nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
