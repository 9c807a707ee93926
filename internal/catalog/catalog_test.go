package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustEmbedded(t *testing.T) *Catalog {
	t.Helper()
	c, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded(): %v", err)
	}
	return c
}

func symbols(els []Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.Symbol)
	}
	return out
}

func intp(n int) *int { return &n }

func TestEmbedded_CountAndNumbering(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	if got := c.Count(); got != 118 {
		t.Fatalf("Count() = %d, want 118", got)
	}
	if got := len(c.All()); got != c.Count() {
		t.Errorf("len(All()) = %d, Count() = %d", got, c.Count())
	}

	seen := make(map[int]bool)
	for i, el := range c.All() {
		if el.Number != i+1 {
			t.Errorf("All()[%d].Number = %d, want ascending order", i, el.Number)
		}
		seen[el.Number] = true
	}
	for n := 1; n <= c.Count(); n++ {
		if !seen[n] {
			t.Errorf("number %d missing from catalog", n)
		}
	}
}

func TestBySymbol_EveryElement(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	for _, el := range c.All() {
		got, ok := c.BySymbol(el.Symbol)
		if !ok {
			t.Errorf("BySymbol(%q) not found", el.Symbol)
			continue
		}
		if got.Symbol != el.Symbol {
			t.Errorf("BySymbol(%q).Symbol = %q", el.Symbol, got.Symbol)
		}
	}
}

func TestBySymbol_CaseSensitive(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	tests := []struct {
		symbol string
		want   bool
	}{
		{"Fe", true},
		{"fe", false},
		{"FE", false},
		{"H", true},
		{"h", false},
		{"Xx", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if _, ok := c.BySymbol(tt.symbol); ok != tt.want {
				t.Errorf("BySymbol(%q) found = %v, want %v", tt.symbol, ok, tt.want)
			}
		})
	}
}

func TestByName_IgnoresCase(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	for _, q := range []string{"gold", "GOLD", "Gold", "gOlD"} {
		el, ok := c.ByName(q)
		if !ok {
			t.Errorf("ByName(%q) not found", q)
			continue
		}
		if el.Symbol != "Au" || el.Number != 79 {
			t.Errorf("ByName(%q) = %s (%d), want Au (79)", q, el.Symbol, el.Number)
		}
	}

	if _, ok := c.ByName("Unobtainium"); ok {
		t.Error("ByName(Unobtainium) should miss")
	}
	if _, ok := c.ByName("Gol"); ok {
		t.Error("ByName must not match a prefix")
	}
}

func TestByNumber(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	el, ok := c.ByNumber(26)
	if !ok || el.Symbol != "Fe" {
		t.Errorf("ByNumber(26) = %q, %v; want Fe", el.Symbol, ok)
	}
	if _, ok := c.ByNumber(0); ok {
		t.Error("ByNumber(0) should miss")
	}
	if _, ok := c.ByNumber(119); ok {
		t.Error("ByNumber(119) should miss")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"symbol exact", "au", []string{"Au"}},
		{"name exact upper", "GOLD", []string{"Au"}},
		{"symbol and substring", "fe", []string{"Fe", "Fm"}},
		{"trimmed", "  Ar ", []string{"C", "Ar", "As", "Ba", "Sm", "Ds"}},
		{"substring only", "x", []string{"O", "Xe"}},
		{"no match", "qq", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := symbols(c.Search(tt.query))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearch_NoDuplicates(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	for _, q := range []string{"ne", "on", "ium", "n", "e"} {
		seen := make(map[string]bool)
		for _, el := range c.Search(q) {
			if seen[el.Symbol] {
				t.Errorf("Search(%q) returned %s twice", q, el.Symbol)
			}
			seen[el.Symbol] = true
		}
	}
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	if got := len(c.Search("   ")); got != c.Count() {
		t.Errorf("Search(blank) returned %d elements, want %d", got, c.Count())
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"period 2", Filter{Period: 2}, []string{"Li", "Be", "B", "C", "N", "O", "F", "Ne"}},
		{"noble gases", Filter{Category: "Noble Gas"}, []string{"He", "Ne", "Ar", "Kr", "Xe", "Rn"}},
		{"liquids", Filter{Phase: "liquid"}, []string{"Br", "Hg"}},
		{"group 1 period 3", Filter{Group: 1, Period: 3}, []string{"Na"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, symbols(c.Filter(tt.filter))); diff != "" {
				t.Errorf("Filter(%+v) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}

	if got := len(c.Filter(Filter{Block: "f"})); got != 30 {
		t.Errorf("f-block count = %d, want 30", got)
	}
	if got := len(c.Filter(Filter{})); got != c.Count() {
		t.Errorf("empty filter returned %d, want %d", got, c.Count())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	all := c.All()
	all[0].Symbol = "Zz"
	if el, _ := c.ByNumber(1); el.Symbol != "H" {
		t.Errorf("mutating All() leaked into catalog: %q", el.Symbol)
	}
}

func TestNew_RejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []Element
		field   string
		index   int
	}{
		{"missing number", []Element{{Symbol: "H", Name: "Hydrogen"}}, "number", 0},
		{"missing symbol", []Element{{Number: 1, Name: "Hydrogen"}}, "symbol", 0},
		{"missing name", []Element{{Number: 1, Symbol: "H"}}, "name", 0},
		{"blank symbol", []Element{{Number: 1, Symbol: "  ", Name: "Hydrogen"}}, "symbol", 0},
		{
			"second record",
			[]Element{{Number: 1, Symbol: "H", Name: "Hydrogen"}, {Number: 2, Symbol: "He"}},
			"name", 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.records)
			if err == nil {
				t.Fatal("New() succeeded, want error")
			}
			if !errors.Is(err, ErrMalformedSource) {
				t.Errorf("errors.Is(err, ErrMalformedSource) = false for %v", err)
			}
			var se *SourceError
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not *SourceError", err)
			}
			if se.Field != tt.field || se.Index != tt.index {
				t.Errorf("SourceError field=%q index=%d, want %q/%d", se.Field, se.Index, tt.field, tt.index)
			}
			if !strings.Contains(err.Error(), "missing required field") {
				t.Errorf("message %q does not name the defect", err)
			}
		})
	}
}

func TestNew_ErrorNamesRecord(t *testing.T) {
	t.Parallel()

	_, err := New([]Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen"},
		{Number: 2, Symbol: "Fe"},
	})
	want := `catalog: record 1 (symbol "Fe"): missing required field "name"`
	if err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestNew_RejectsBrokenInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []Element
		field   string
	}{
		{"duplicate symbol", []Element{
			{Number: 1, Symbol: "H", Name: "Hydrogen"},
			{Number: 2, Symbol: "H", Name: "Helium"},
		}, "symbol"},
		{"duplicate name ignoring case", []Element{
			{Number: 1, Symbol: "H", Name: "Hydrogen"},
			{Number: 2, Symbol: "He", Name: "HYDROGEN"},
		}, "name"},
		{"duplicate number", []Element{
			{Number: 1, Symbol: "H", Name: "Hydrogen"},
			{Number: 1, Symbol: "He", Name: "Helium"},
		}, "number"},
		{"gap in numbers", []Element{
			{Number: 1, Symbol: "H", Name: "Hydrogen"},
			{Number: 3, Symbol: "Li", Name: "Lithium"},
		}, "number"},
		{"negative number", []Element{
			{Number: -1, Symbol: "H", Name: "Hydrogen"},
		}, "number"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.records)
			var se *SourceError
			if !errors.As(err, &se) {
				t.Fatalf("New() error = %v, want *SourceError", err)
			}
			if se.Field != tt.field {
				t.Errorf("Field = %q, want %q", se.Field, tt.field)
			}
		})
	}
}

func TestNew_NormalizesAbsentText(t *testing.T) {
	t.Parallel()

	c, err := New([]Element{{Number: 1, Symbol: "H", Name: "Hydrogen", Period: intp(1)}})
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	el, _ := c.BySymbol("H")
	if el.Category != NotAvailable || el.CPKHex != NotAvailable {
		t.Errorf("absent text not normalized: category=%q cpk=%q", el.Category, el.CPKHex)
	}
	if el.Group != nil {
		t.Errorf("Group = %v, want nil", *el.Group)
	}
}

func TestEmbedded_GoldRecord(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	au, ok := c.BySymbol("Au")
	if !ok {
		t.Fatal("Au missing")
	}
	if au.Name != "Gold" || au.Number != 79 {
		t.Errorf("Au = %s/%d", au.Name, au.Number)
	}
	if au.Period == nil || *au.Period != 6 || au.Group == nil || *au.Group != 11 {
		t.Errorf("Au period/group = %v/%v, want 6/11", au.Period, au.Group)
	}
	if diff := cmp.Diff([]int{2, 8, 18, 32, 18, 1}, au.Shells); diff != "" {
		t.Errorf("Au shells mismatch (-want +got):\n%s", diff)
	}
	if au.CPKHex != "ffd123" {
		t.Errorf("Au cpk-hex = %q", au.CPKHex)
	}
	if au.ElectronConfigurationSemantic != "[Xe] 4f14 5d10 6s1" {
		t.Errorf("Au semantic configuration = %q", au.ElectronConfigurationSemantic)
	}
}

func TestEmbedded_FBlockHasNoGroup(t *testing.T) {
	t.Parallel()
	c := mustEmbedded(t)

	for _, sym := range []string{"Ce", "U", "Lr"} {
		el, _ := c.BySymbol(sym)
		if el.Group != nil {
			t.Errorf("%s group = %d, want absent", sym, *el.Group)
		}
		if el.Block != "f" {
			t.Errorf("%s block = %q, want f", sym, el.Block)
		}
	}
}
