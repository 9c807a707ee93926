// Package export writes the catalog out as JSON, TOML or a SQLite database.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/locale"
)

// Format names an export encoding.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTOML, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("export: unknown format %q (want json, toml or sqlite)", s)
	}
}

// document mirrors the shape catalog.Load reads back.
type document struct {
	Elements []catalog.Element `json:"elements" toml:"elements"`
}

// JSON writes els as an indented {"elements": [...]} document.
func JSON(w io.Writer, els []catalog.Element) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(document{Elements: els}); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// TOML writes els as an array of [[elements]] tables. TOML has no null, so
// absent numbers are omitted and absent text is written as N/A.
func TOML(w io.Writer, els []catalog.Element) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(document{Elements: els}); err != nil {
		return fmt.Errorf("export: encode toml: %w", err)
	}
	return nil
}

// ToFile writes els to path in the given format. names is only used by the
// SQLite format and may be nil.
func ToFile(ctx context.Context, format Format, path string, els []catalog.Element, names *locale.Table) error {
	if format == FormatSQLite {
		store, err := OpenSQLite(ctx, path)
		if err != nil {
			return err
		}
		if err := store.Write(ctx, els, names); err != nil {
			store.Close()
			return err
		}
		return store.Close()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Write(f, format, els); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// Write encodes els to w in a text format. SQLite needs a file path; use
// ToFile or OpenSQLite for it.
func Write(w io.Writer, format Format, els []catalog.Element) error {
	switch format {
	case FormatJSON:
		return JSON(w, els)
	case FormatTOML:
		return TOML(w, els)
	default:
		return fmt.Errorf("export: format %q cannot be streamed", format)
	}
}
