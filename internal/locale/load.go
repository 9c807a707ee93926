package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultLocale is the table used when no locale is configured.
const DefaultLocale = "zh-Hans"

// ErrMalformedTable is matched by every TableError.
var ErrMalformedTable = errors.New("malformed locale table")

// TableError reports why a locale table was rejected.
type TableError struct {
	Source string
	Reason string
}

// Error formats the table source and the reason it was rejected.
func (e *TableError) Error() string {
	return fmt.Sprintf("locale: %s: %s", e.Source, e.Reason)
}

// Is reports whether target is ErrMalformedTable.
func (e *TableError) Is(target error) bool {
	return target == ErrMalformedTable
}

// file is the TOML shape of a table.
type file struct {
	Locale  string            `toml:"locale"`
	Unknown string            `toml:"unknown"`
	Names   map[string]string `toml:"names"`
	Labels  map[string]string `toml:"labels"`
}

//go:embed tables/*.toml
var embeddedTables embed.FS

// embeddedSet holds the parsed built-in tables in tag order, the first being
// DefaultLocale.
type embeddedSet struct {
	tables  []*Table
	matcher language.Matcher
}

var loadEmbedded = sync.OnceValues(func() (*embeddedSet, error) {
	return parseFS(embeddedTables)
})

// Parse decodes and validates a table. source is only used in errors.
func Parse(source string, data []byte) (*Table, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("locale: parse %s: %w", source, err)
	}

	loc := strings.TrimSpace(f.Locale)
	if loc == "" {
		return nil, &TableError{Source: source, Reason: "locale is required"}
	}
	if _, err := language.Parse(loc); err != nil {
		return nil, &TableError{Source: source, Reason: fmt.Sprintf("invalid locale %q", loc)}
	}

	t := &Table{
		locale:  loc,
		unknown: f.Unknown,
		names:   make(map[string]string, len(f.Names)),
		symbols: make(map[string]string, len(f.Names)),
		labels:  make(map[string]string, len(f.Labels)),
	}
	if t.unknown == "" {
		t.unknown = "?"
	}

	// Sorted so the reported duplicate does not depend on map order.
	syms := make([]string, 0, len(f.Names))
	for sym := range f.Names {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	for _, sym := range syms {
		name := strings.TrimSpace(f.Names[sym])
		if strings.TrimSpace(sym) == "" {
			return nil, &TableError{Source: source, Reason: "blank symbol in names"}
		}
		if name == "" {
			return nil, &TableError{Source: source, Reason: fmt.Sprintf("blank name for symbol %q", sym)}
		}
		key := fold(name)
		if other, dup := t.symbols[key]; dup {
			return nil, &TableError{
				Source: source,
				Reason: fmt.Sprintf("name %q used for both %q and %q", name, other, sym),
			}
		}
		t.names[sym] = name
		t.symbols[key] = sym
	}
	for k, v := range f.Labels {
		t.labels[strings.TrimSpace(k)] = v
	}
	return t, nil
}

// LoadFile reads and validates a table from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Embedded returns the built-in table that best matches the requested BCP 47
// tag. Unsupported languages fall back to DefaultLocale.
func Embedded(tag string) (*Table, error) {
	set, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tag) == "" {
		tag = DefaultLocale
	}
	want, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("locale: parse tag %q: %w", tag, err)
	}
	_, idx, _ := set.matcher.Match(want)
	return set.tables[idx], nil
}

// Open returns the table at path, or the embedded table for tag when path is empty.
func Open(tag, path string) (*Table, error) {
	if path == "" {
		return Embedded(tag)
	}
	return LoadFile(path)
}

// Available returns the locales of the built-in tables, default first.
func Available() ([]string, error) {
	set, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(set.tables))
	for i, t := range set.tables {
		out[i] = t.locale
	}
	return out, nil
}

func parseFS(fsys fs.FS) (*embeddedSet, error) {
	paths, err := fs.Glob(fsys, "tables/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: glob tables: %w", err)
	}
	sort.Strings(paths)

	var tables []*Table
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", p, err)
		}
		t, err := Parse(p, data)
		if err != nil {
			return nil, err
		}
		if want := strings.TrimSuffix(path.Base(p), ".toml"); t.locale != want {
			return nil, &TableError{Source: p, Reason: fmt.Sprintf("locale %q must match file name %q", t.locale, want)}
		}
		if t.locale == DefaultLocale {
			tables = append([]*Table{t}, tables...)
		} else {
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 || tables[0].locale != DefaultLocale {
		return nil, fmt.Errorf("locale: default table %s is not embedded", DefaultLocale)
	}

	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = language.MustParse(t.locale)
	}
	return &embeddedSet{tables: tables, matcher: language.NewMatcher(tags)}, nil
}
