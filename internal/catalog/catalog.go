// Package catalog holds the periodic table: an immutable, ordered set of
// element records validated once at construction and only read afterwards.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Catalog is the read-only collection of element records in source order.
// The zero value is an empty catalog; use New or one of the loaders.
type Catalog struct {
	elements []Element
}

// New validates records and returns a catalog over normalized copies of them.
// It refuses to build when a record lacks number, symbol or name, when a
// symbol, name or number repeats, or when numbers do not cover 1..len(records).
func New(records []Element) (*Catalog, error) {
	seenSymbol := make(map[string]int, len(records))
	seenName := make(map[string]int, len(records))
	seenNumber := make(map[int]int, len(records))

	elements := make([]Element, 0, len(records))
	for i, rec := range records {
		switch {
		case rec.Number == 0:
			return nil, missingField(i, rec, "number")
		case strings.TrimSpace(rec.Symbol) == "":
			return nil, missingField(i, rec, "symbol")
		case strings.TrimSpace(rec.Name) == "":
			return nil, missingField(i, rec, "name")
		}
		if rec.Number < 0 || rec.Number > len(records) {
			return nil, invalidField(i, rec, "number", "out-of-range value in field")
		}
		if _, dup := seenNumber[rec.Number]; dup {
			return nil, invalidField(i, rec, "number", "duplicate value in field")
		}
		if _, dup := seenSymbol[rec.Symbol]; dup {
			return nil, invalidField(i, rec, "symbol", "duplicate value in field")
		}
		foldedName := fold(rec.Name)
		if _, dup := seenName[foldedName]; dup {
			return nil, invalidField(i, rec, "name", "duplicate value in field")
		}
		seenNumber[rec.Number] = i
		seenSymbol[rec.Symbol] = i
		seenName[foldedName] = i

		elements = append(elements, rec.normalized())
	}
	// Every number is unique and within 1..len, so the set is a bijection.
	return &Catalog{elements: elements}, nil
}

// All returns every element in catalog order. The slice is a copy.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Count returns the number of records in the catalog.
func (c *Catalog) Count() int {
	return len(c.elements)
}

// BySymbol returns the element whose symbol equals symbol exactly,
// including case.
func (c *Catalog) BySymbol(symbol string) (Element, bool) {
	for _, el := range c.elements {
		if el.Symbol == symbol {
			return el, true
		}
	}
	return Element{}, false
}

// ByName returns the element whose English name equals name ignoring case.
func (c *Catalog) ByName(name string) (Element, bool) {
	want := fold(name)
	for _, el := range c.elements {
		if fold(el.Name) == want {
			return el, true
		}
	}
	return Element{}, false
}

// ByNumber returns the element with the given atomic number.
func (c *Catalog) ByNumber(number int) (Element, bool) {
	for _, el := range c.elements {
		if el.Number == number {
			return el, true
		}
	}
	return Element{}, false
}

// Search folds and trims query, then collects in catalog order every element
// whose symbol or name equals the query, or contains it as a substring.
// An element that matches exactly is not examined further, so no element
// appears twice. An empty query matches every element.
func (c *Catalog) Search(query string) []Element {
	q := fold(strings.TrimSpace(query))

	var results []Element
	for _, el := range c.elements {
		symbol := fold(el.Symbol)
		if symbol == q {
			results = append(results, el)
			continue
		}

		name := fold(el.Name)
		if name == q {
			results = append(results, el)
			continue
		}

		if strings.Contains(symbol, q) || strings.Contains(name, q) {
			results = append(results, el)
		}
	}
	return results
}

// Filter narrows a listing. Zero-valued fields match everything; string
// fields compare ignoring case.
type Filter struct {
	Period   int
	Group    int
	Block    string
	Category string
	Phase    string
}

// Filter returns, in catalog order, the elements accepted by f.
func (c *Catalog) Filter(f Filter) []Element {
	var out []Element
	for _, el := range c.elements {
		if f.matches(el) {
			out = append(out, el)
		}
	}
	return out
}

func (f Filter) matches(el Element) bool {
	if f.Period != 0 && (el.Period == nil || *el.Period != f.Period) {
		return false
	}
	if f.Group != 0 && (el.Group == nil || *el.Group != f.Group) {
		return false
	}
	return textMatches(f.Block, el.Block) &&
		textMatches(f.Category, el.Category) &&
		textMatches(f.Phase, el.Phase)
}

func textMatches(want string, got Text) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	return got.Available() && fold(want) == fold(string(got))
}

// fold returns the case-folded form of s. A new Caser is used per call
// because Casers carry state and must not be shared.
func fold(s string) string {
	return cases.Fold().String(s)
}
