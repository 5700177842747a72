package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/prompt"
	"tableflip.dev/positivity/pkg/runner/reframe"
)

func addReframe(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ro := &options.ReframeOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "reframe [challenge]",
		Short: "Find a kinder perspective on a difficult moment.",
		Long: options.Wrap80("Describe a challenge to get three alternative perspectives. " +
			"Pick one with --pick, which shows the suggestion and asks before saving " +
			"(--yes skips the question), optionally rewording it with --text, or write your own " +
			"with --own. Use -i to walk through the steps interactively."),
		Example: `
positivity reframe "I missed my train"
positivity reframe "I missed my train" --pick 2
positivity reframe "I missed my train" --pick 2 --yes
positivity reframe "I missed my train" --own --text "A slower morning is still a morning."
positivity reframe -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
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
			s := reframe.Reframe{
				Service:     svc,
				Challenge:   strings.Join(args, " "),
				Pick:        ro.Pick,
				Own:         ro.Own,
				Text:        ro.Text,
				Yes:         ro.Yes,
				Interactive: i.Interactive,
				Prompter:    &prompt.Prompter{},
				Format:      format,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddReframeArgs(cmd, ro)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
