package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/config"
)

// Info reports where the journal lives and how it is configured.
type Info struct {
	Config  *config.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv(config.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, config.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, config.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.AddRow("Config.path:", n.Config.BasePath())
	tbl.AddRow("AI provider:", providerName(n.Config, n.Service))
	if n.Config.AI.Model != "" {
		tbl.AddRow("AI model:", n.Config.AI.Model)
	}
	tbl.AddRow("AI timeout:", n.Config.AI.Timeout)
	tbl.AddRow("Log level:", n.Config.Log.Level)
	tbl.AddRow("TUI log:", n.Config.TUILogPath())

	if n.Service == nil || n.Service.Log == nil {
		_, _ = fmt.Fprintln(out, tbl)
		return fmt.Errorf("info: journal persistence unavailable")
	}
	tbl.AddRow("Journal:", n.Service.Log.Location())
	tbl.AddRow("Entries:", n.Service.Log.Len())
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

func providerName(cfg *config.Config, svc *app.Service) string {
	name := cfg.AI.Provider
	if cfg.AI.APIKey == "" {
		return name + " (no API key, using built-in responses)"
	}
	if svc != nil && svc.AI != nil && svc.AI.ProviderName() != name {
		return svc.AI.ProviderName()
	}
	return name
}
