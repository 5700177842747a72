package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the legend for sentiments and the streak bar.",
		Example: `
positivity key
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
