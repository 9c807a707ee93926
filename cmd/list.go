package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List elements, optionally filtered by period, group, block, category or phase",
	Example: `  periodic list --period 2
  periodic list --block f
  periodic list --phase liquid`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Int("period", 0, "only elements in this period (1-7)")
	listCmd.Flags().Int("group", 0, "only elements in this group (1-18)")
	listCmd.Flags().String("block", "", "only elements in this block (s, p, d, f)")
	listCmd.Flags().String("category", "", "only elements in this category, e.g. \"noble gas\"")
	listCmd.Flags().String("phase", "", "only elements in this phase (gas, liquid, solid)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var f catalog.Filter
	f.Period, _ = cmd.Flags().GetInt("period")
	f.Group, _ = cmd.Flags().GetInt("group")
	f.Block, _ = cmd.Flags().GetString("block")
	f.Category, _ = cmd.Flags().GetString("category")
	f.Phase, _ = cmd.Flags().GetString("phase")

	results := s.catalog.Filter(f)
	s.printer.Elements(results, s.resolver.LocalizedName)
	s.printer.Count(len(results))
	return nil
}
