package commands

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// installPath is the go install target for the positivity binary.
const installPath = "tableflip.dev/positivity"

func installArgs(to string) []string {
	to = strings.TrimSpace(to)
	if to == "" {
		to = "latest"
	}
	return []string{"install", installPath + "@" + to}
}

func addUpgrade(topLevel *cobra.Command) {
	to := "latest"
	dryRun := false
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Reinstall positivity with go install.",
		Example: `
positivity upgrade
positivity upgrade --to v0.2.0
positivity upgrade --dry-run
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			args := installArgs(to)
			ex := exec.Command("go", args...)
			if dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ex.String())
				return nil
			}
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				if msg := strings.TrimSpace(out.String()); msg != "" {
					err = fmt.Errorf("upgrade: %w: %s", err, msg)
				}
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", to, "Version to install, e.g. v0.2.0.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the go install command without running it.")

	topLevel.AddCommand(cmd)
}
