package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/config"
	"github.com/papapumpkin/periodic/internal/locale"
	"github.com/papapumpkin/periodic/internal/resolver"
	"github.com/papapumpkin/periodic/internal/telemetry"
	"github.com/papapumpkin/periodic/internal/ui"
)

// session bundles what a lookup command needs: configuration, the loaded
// sources, a resolver, the history emitter and a printer.
type session struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	names    *locale.Table
	resolver *resolver.Resolver
	history  *telemetry.Emitter
	printer  *ui.Printer
}

// openSession loads configuration and sources for cmd. Callers must Close it.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	c, err := catalog.Open(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	names, err := locale.Open(cfg.Locale, cfg.LocaleFile)
	if err != nil {
		return nil, err
	}
	history, err := telemetry.Open(cfg.HistoryFile)
	if err != nil {
		return nil, err
	}

	p := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color, names)
	p.SetVerbose(cfg.Verbose)

	source := cfg.DataFile
	if source == "" {
		source = catalog.EmbeddedSource
	}
	p.Verbose("data: %s (%d elements)", source, c.Count())
	p.Verbose("locale: %s (%d names)", names.Locale(), names.Len())
	if cfg.HistoryFile != "" {
		p.Verbose("history: %s (session %s)", cfg.HistoryFile, history.Session())
	}

	return &session{
		cfg:      cfg,
		catalog:  c,
		names:    names,
		resolver: resolver.New(c, names),
		history:  history,
		printer:  p,
	}, nil
}

// Close releases the history file.
func (s *session) Close() error {
	return s.history.Close()
}

// record reports a history write failure without failing the command.
func (s *session) record(err error) {
	if err != nil {
		s.printer.Error(err.Error())
	}
}

// commandContext returns cmd's context, or Background when cmd was not
// started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
