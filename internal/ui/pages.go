package ui

import (
	"strconv"
	"strings"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/config"
)

// Labeler translates display labels. *locale.Table satisfies it.
type Labeler interface {
	Label(key, fallback string) string
}

// Row is one label/value line of a page.
type Row struct {
	Key   string
	Label string
	Value string
}

// Page is an ordered group of rows shown under one title.
type Page struct {
	Key   string
	Title string
	Rows  []Row
}

// englishLabels are the defaults used when the Labeler has no translation.
var englishLabels = map[string]string{
	"page_basic":                      "Basic",
	"page_details":                    "Details",
	"page_properties":                 "Properties",
	"symbol":                          "Symbol",
	"name":                            "Name",
	"localized_name":                  "Localized name",
	"number":                          "Atomic number",
	"period":                          "Period",
	"group":                           "Group",
	"category":                        "Category",
	"phase":                           "Phase",
	"discovered_by":                   "Discovered by",
	"named_by":                        "Named by",
	"electron_configuration":          "Electron configuration",
	"electron_configuration_semantic": "Configuration (semantic)",
	"shells":                          "Shells",
	"appearance":                      "Appearance",
	"electron_affinity":               "Electron affinity",
	"electronegativity_pauling":       "Electronegativity (Pauling)",
	"ionization_energies":             "Ionization energies",
	"summary":                         "Summary",
	"source":                          "Source",
	"atomic_mass":                     "Atomic mass",
	"density":                         "Density",
	"melt":                            "Melting point",
	"boil":                            "Boiling point",
	"molar_heat":                      "Molar heat",
	"block":                           "Block",
	"cpk_hex":                         "CPK color",
	"prompt":                          "Enter an element symbol or name",
	"empty_query":                     "Please enter a query",
	"not_found":                       "Element not found: %s",
	"hint_spelling":                   "Check the spelling",
	"hint_symbol":                     "Use an element symbol (e.g. H, Fe)",
	"hint_localized":                  "Use a localized name (e.g. 氢, 铁)",
	"welcome":                         "Periodic table lookup",
}

// Label returns the translation of key from l, falling back to English.
// A nil Labeler always yields English.
func Label(l Labeler, key string) string {
	fallback, ok := englishLabels[key]
	if !ok {
		fallback = key
	}
	if l == nil {
		return fallback
	}
	return l.Label(key, fallback)
}

// NotFound formats the not-found message for query.
func NotFound(l Labeler, query string) string {
	return strings.Replace(Label(l, "not_found"), "%s", query, 1)
}

// Hints returns the suggestions shown after a failed lookup.
func Hints(l Labeler) []string {
	return []string{Label(l, "hint_spelling"), Label(l, "hint_symbol"), Label(l, "hint_localized")}
}

// Pages builds the requested pages for el. which holds page keys from the
// config package; when empty all pages are built in their canonical order.
// Unknown keys are skipped.
func Pages(el catalog.Element, localized string, l Labeler, which []string) []Page {
	if len(which) == 0 {
		which = config.AllPages()
	}
	pages := make([]Page, 0, len(which))
	for _, key := range which {
		var rows []Row
		switch key {
		case config.PageBasic:
			rows = basicRows(el, localized)
		case config.PageDetails:
			rows = detailRows(el)
		case config.PageProperties:
			rows = propertyRows(el)
		default:
			continue
		}
		for i := range rows {
			rows[i].Label = Label(l, rows[i].Key)
		}
		pages = append(pages, Page{Key: key, Title: Label(l, "page_"+key), Rows: rows})
	}
	return pages
}

func basicRows(el catalog.Element, localized string) []Row {
	if localized == "" {
		localized = string(catalog.NotAvailable)
	}
	return []Row{
		{Key: "symbol", Value: el.Symbol},
		{Key: "name", Value: el.Name},
		{Key: "localized_name", Value: localized},
		{Key: "number", Value: strconv.Itoa(el.Number)},
		{Key: "period", Value: intValue(el.Period)},
		{Key: "group", Value: intValue(el.Group)},
		{Key: "category", Value: el.Category.String()},
		{Key: "phase", Value: el.Phase.String()},
		{Key: "discovered_by", Value: el.DiscoveredBy.String()},
		{Key: "named_by", Value: el.NamedBy.String()},
		{Key: "electron_configuration", Value: el.ElectronConfiguration.String()},
		{Key: "electron_configuration_semantic", Value: el.ElectronConfigurationSemantic.String()},
		{Key: "shells", Value: intList(el.Shells)},
	}
}

func detailRows(el catalog.Element) []Row {
	return []Row{
		{Key: "discovered_by", Value: el.DiscoveredBy.String()},
		{Key: "named_by", Value: el.NamedBy.String()},
		{Key: "appearance", Value: el.Appearance.String()},
		{Key: "electron_affinity", Value: quantity(el.ElectronAffinity, "kJ/mol")},
		{Key: "electronegativity_pauling", Value: quantity(el.ElectronegativityPauling, "")},
		{Key: "ionization_energies", Value: floatList(el.IonizationEnergies, "kJ/mol")},
		{Key: "summary", Value: el.Summary.String()},
		{Key: "source", Value: el.Source.String()},
	}
}

func propertyRows(el catalog.Element) []Row {
	cpk := el.CPKHex.String()
	if el.CPKHex.Available() {
		cpk = "#" + cpk
	}
	return []Row{
		{Key: "atomic_mass", Value: quantity(el.AtomicMass, "u")},
		{Key: "density", Value: quantity(el.Density, "g/cm³")},
		{Key: "melt", Value: quantity(el.Melt, "K")},
		{Key: "boil", Value: quantity(el.Boil, "K")},
		{Key: "molar_heat", Value: quantity(el.MolarHeat, "J/(mol·K)")},
		{Key: "electron_affinity", Value: quantity(el.ElectronAffinity, "kJ/mol")},
		{Key: "electronegativity_pauling", Value: quantity(el.ElectronegativityPauling, "")},
		{Key: "ionization_energies", Value: floatList(el.IonizationEnergies, "kJ/mol")},
		{Key: "block", Value: el.Block.String()},
		{Key: "phase", Value: el.Phase.String()},
		{Key: "cpk_hex", Value: cpk},
	}
}

func intValue(v *int) string {
	if v == nil {
		return string(catalog.NotAvailable)
	}
	return strconv.Itoa(*v)
}

// quantity formats v with its unit. Absent values never carry a unit.
func quantity(v *float64, unit string) string {
	if v == nil {
		return string(catalog.NotAvailable)
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

func intList(vs []int) string {
	if len(vs) == 0 {
		return string(catalog.NotAvailable)
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func floatList(vs []float64, unit string) string {
	if len(vs) == 0 {
		return string(catalog.NotAvailable)
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ") + " " + unit
}
