package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Last   string
	Follow bool
	Style  string
	IDs    bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVarP(&o.Last, "last", "l", "",
		"Only show entries dated within a window such as 3d, 2w or 1w3d.")
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		"Keep running and print entries as they are added.")
	cmd.Flags().StringVar(&o.Style, "style", "dark",
		"Markdown style for --output=markdown. One of 'dark', 'light', 'notty' or 'ascii'.")
	cmd.Flags().BoolVar(&o.IDs, "ids", false,
		"Show entry ids.")
}
