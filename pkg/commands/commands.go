package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/ai/providers"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/commands/options"
	"tableflip.dev/positivity/pkg/config"
	"tableflip.dev/positivity/pkg/logging"
	"tableflip.dev/positivity/pkg/store"
)

var (
	output   = &options.OutputOptions{}
	logLevel string
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use: "positivity",
		Short: options.Wrap80("A positivity journal: record three good things each day, " +
			"reframe difficult moments and watch your streak grow."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Diagnostics level. One of 'debug', 'info', 'warn' or 'error'. Overrides log.level.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWrite(topLevel)
	addReframe(topLevel)
	addLog(topLevel)
	addInsights(topLevel)
	addWisdom(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

// bootstrap loads configuration, installs logging and opens the journal.
// The terminal UI owns the screen, so its diagnostics go to a file.
func bootstrap(ctx context.Context, tui bool) (*config.Config, *app.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logPath := cfg.Log.Path
	if tui {
		logPath = cfg.TUILogPath()
	}
	logging.Setup(logging.Options{Level: cfg.Log.Level, Path: logPath})

	p, err := store.Load(cfg)
	if err != nil {
		return cfg, nil, err
	}
	aiSvc := providers.NewService(cfg.AI)
	svc := &app.Service{
		Log:    store.Open(ctx, p),
		AI:     aiSvc,
		Wisdom: ai.NewWisdom(aiSvc),
	}
	return cfg, svc, nil
}
