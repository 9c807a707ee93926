// Package locale provides the fixed symbol-to-localized-name side-table used
// when resolving and displaying elements, together with translated display
// labels. Tables are TOML documents; the built-in ones are embedded.
package locale

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Table maps element symbols to localized names. It is immutable once parsed.
type Table struct {
	locale  string
	unknown string
	names   map[string]string // symbol -> localized name
	symbols map[string]string // folded localized name -> symbol
	labels  map[string]string
}

// Locale returns the BCP 47 tag the table was declared with.
func (t *Table) Locale() string {
	return t.locale
}

// Unknown returns the sentinel shown for symbols the table does not cover.
func (t *Table) Unknown() string {
	return t.unknown
}

// Name returns the localized name of symbol, or the table's unknown sentinel.
func (t *Table) Name(symbol string) string {
	if name, ok := t.names[symbol]; ok {
		return name
	}
	return t.unknown
}

// Lookup returns the localized name of symbol and whether the table has one.
func (t *Table) Lookup(symbol string) (string, bool) {
	name, ok := t.names[symbol]
	return name, ok
}

// Symbol returns the symbol whose localized name equals name ignoring case.
func (t *Table) Symbol(name string) (string, bool) {
	sym, ok := t.symbols[fold(name)]
	return sym, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Missing returns, in the given order, the symbols the table has no name for.
func (t *Table) Missing(symbols []string) []string {
	var out []string
	for _, s := range symbols {
		if _, ok := t.names[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Label returns the translated label for key, or fallback when the table
// does not define it.
func (t *Table) Label(key, fallback string) string {
	if v, ok := t.labels[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Labels returns the label keys defined by the table, sorted.
func (t *Table) Labels() []string {
	keys := make([]string, 0, len(t.labels))
	for k := range t.labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
