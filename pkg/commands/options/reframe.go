package options

import (
	"github.com/spf13/cobra"
)

// ReframeOptions
type ReframeOptions struct {
	Pick int
	Own  bool
	Text string
	Yes  bool
}

func AddReframeArgs(cmd *cobra.Command, o *ReframeOptions) {
	cmd.Flags().IntVarP(&o.Pick, "pick", "p", 0,
		"Save suggestion number N (1-3) after showing it. Without it the suggestions are listed.")
	cmd.Flags().BoolVar(&o.Own, "own", false,
		"Skip the suggestions and save --text as your own reframe.")
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		"Reframe text to save, replacing the suggestion's wording.")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Save the picked suggestion without asking.")
}
