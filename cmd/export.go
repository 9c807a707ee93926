package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/periodic/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the element catalog as JSON, TOML or SQLite",
	Long: `Writes every element of the loaded catalog to a file. The JSON and TOML
documents can be read back with --data. The SQLite database also stores
the localized names of the active locale.

Without --format the format is taken from the --out extension.`,
	Example: `  periodic export --out elements.toml
  periodic export --format sqlite --out periodic.db`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "output format: json, toml or sqlite")
	exportCmd.Flags().StringP("out", "o", "", "output path (required; - writes json or toml to stdout)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	name, _ := cmd.Flags().GetString("format")

	format, err := exportFormat(name, out)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	els := s.catalog.All()
	if out == "-" {
		return export.Write(cmd.OutOrStdout(), format, els)
	}
	if err := export.ToFile(commandContext(cmd), format, out, els, s.names); err != nil {
		return err
	}
	s.printer.Info(fmt.Sprintf("wrote %d elements to %s (%s)", len(els), out, format))
	return nil
}

// exportFormat picks the format from the flag, falling back to the extension.
func exportFormat(name, out string) (export.Format, error) {
	if name != "" {
		return export.ParseFormat(name)
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".json":
		return export.FormatJSON, nil
	case ".toml":
		return export.FormatTOML, nil
	case ".db", ".sqlite", ".sqlite3":
		return export.FormatSQLite, nil
	}
	return "", fmt.Errorf("export: cannot infer format from %q; pass --format", out)
}
