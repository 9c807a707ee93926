// Package resolver maps a free-text query to at most one element by trying,
// in order, an exact symbol, a localized name and an English name.
package resolver

import (
	"strings"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/locale"
)

// Strategy identifies which rule produced a match.
type Strategy string

// Resolution strategies, in priority order.
const (
	StrategySymbol    Strategy = "symbol"
	StrategyLocalized Strategy = "localized"
	StrategyName      Strategy = "name"
)

// Match is a resolved element together with the rule that found it.
type Match struct {
	Element  catalog.Element
	Strategy Strategy
}

// Resolver resolves queries against a catalog and a localized-name table.
// It holds no mutable state and may be shared freely.
type Resolver struct {
	catalog *catalog.Catalog
	names   *locale.Table
}

// New returns a resolver over c and names. names may be nil, in which case
// the localized-name rule never matches.
func New(c *catalog.Catalog, names *locale.Table) *Resolver {
	return &Resolver{catalog: c, names: names}
}

// Resolve returns the element the query denotes, or false when nothing matches.
func (r *Resolver) Resolve(query string) (catalog.Element, bool) {
	m, ok := r.Explain(query)
	return m.Element, ok
}

// Explain is Resolve but also reports the strategy that matched.
// The query is trimmed; a blank query never matches.
func (r *Resolver) Explain(query string) (Match, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Match{}, false
	}

	if el, ok := r.catalog.BySymbol(q); ok {
		return Match{Element: el, Strategy: StrategySymbol}, true
	}

	if r.names != nil {
		if sym, ok := r.names.Symbol(q); ok {
			if el, ok := r.catalog.BySymbol(sym); ok {
				return Match{Element: el, Strategy: StrategyLocalized}, true
			}
		}
	}

	if el, ok := r.catalog.ByName(q); ok {
		return Match{Element: el, Strategy: StrategyName}, true
	}
	return Match{}, false
}

// LocalizedName returns the localized name for el, or the table's unknown
// sentinel.
func (r *Resolver) LocalizedName(el catalog.Element) string {
	if r.names == nil {
		return string(catalog.NotAvailable)
	}
	return r.names.Name(el.Symbol)
}
