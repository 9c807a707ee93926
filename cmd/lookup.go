package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/telemetry"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query...>",
	Short: "Resolve a symbol, English name or localized name to one element",
	Long: `Resolves the query by trying, in order, an exact element symbol
(case-sensitive), a localized name and an English name (both ignoring case).
Words are joined with spaces. Exits 1 when nothing matches.`,
	Example: `  periodic lookup Fe
  periodic lookup 铁
  periodic lookup iron`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		s.printer.EmptyQuery()
		return errReported
	}

	match, ok := s.resolver.Explain(query)
	rec := telemetry.LookupData{Query: query, Found: ok}
	if ok {
		rec.Strategy = string(match.Strategy)
		rec.Symbol = match.Element.Symbol
	}
	s.record(s.history.Lookup(rec))

	if !ok {
		s.printer.NotFound(query)
		return errReported
	}
	s.printer.Verbose("matched %s by %s", match.Element.Symbol, match.Strategy)
	s.printer.Element(match.Element, s.resolver.LocalizedName(match.Element), s.cfg.Pages)
	return nil
}
