package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "List elements whose symbol or English name contains the query",
	Long: `Lists, in atomic-number order, every element whose symbol or English
name equals or contains the query, ignoring case. An empty query lists
every element.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	query := strings.Join(args, " ")
	results := s.catalog.Search(query)

	symbols := make([]string, len(results))
	for i, el := range results {
		symbols[i] = el.Symbol
	}
	s.record(s.history.Search(strings.TrimSpace(query), symbols))

	s.printer.Elements(results, s.resolver.LocalizedName)
	s.printer.Count(len(results))
	return nil
}
