package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/config"
	"github.com/papapumpkin/periodic/internal/locale"
	"github.com/papapumpkin/periodic/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the element dataset and locale table load cleanly",
	Long: `Loads the configured element dataset and localized-name table and reports
each check. Exits 1 if any check fails.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("locale-file", "", "locale table to check instead of the configured one")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if path, _ := cmd.Flags().GetString("locale-file"); path != "" {
		cfg.LocaleFile = path
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	p := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color, nil)
	ok := true

	source := cfg.DataFile
	if source == "" {
		source = catalog.EmbeddedSource
	}
	c, err := catalog.Open(cfg.DataFile)
	if err != nil {
		p.Check(false, "catalog "+source, err.Error())
		ok = false
	} else {
		p.Check(true, "catalog "+source, fmt.Sprintf("%d elements", c.Count()))
	}

	tableSource := cfg.LocaleFile
	if tableSource == "" {
		tableSource = "embedded:" + cfg.Locale
	}
	names, err := locale.Open(cfg.Locale, cfg.LocaleFile)
	if err != nil {
		p.Check(false, "locale "+tableSource, err.Error())
		ok = false
	} else {
		detail := fmt.Sprintf("%s, %d names", names.Locale(), names.Len())
		if cfg.LocaleFile == "" {
			if tags, err := locale.Available(); err == nil {
				detail += "; built-in " + strings.Join(tags, ", ")
			}
		}
		p.Check(true, "locale "+tableSource, detail)
	}

	if c != nil && names != nil {
		els := c.All()
		symbols := make([]string, len(els))
		for i, el := range els {
			symbols[i] = el.Symbol
		}
		if missing := names.Missing(symbols); len(missing) > 0 {
			p.Check(false, "coverage", fmt.Sprintf("no localized name for %d symbol(s): %v", len(missing), missing))
			ok = false
		} else {
			p.Check(true, "coverage", "every symbol has a localized name")
		}
	}

	if !ok {
		return errReported
	}
	return nil
}
