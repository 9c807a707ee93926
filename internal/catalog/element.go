package catalog

import "encoding/json"

// NotAvailable is the sentinel stored in text fields the source left empty or null.
const NotAvailable Text = "N/A"

// Text is a free-text element field. Absent values are normalized to
// NotAvailable when a Catalog is built, so display code never sees "".
type Text string

// String returns the text, or NotAvailable when it is empty.
func (t Text) String() string {
	if t == "" {
		return string(NotAvailable)
	}
	return string(t)
}

// Available reports whether the field carries a real value.
func (t Text) Available() bool {
	return t != "" && t != NotAvailable
}

// MarshalJSON writes NotAvailable back as null so exported documents match
// the canonical dataset.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Available() {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// Element is one record of the periodic table. Field names in the json and
// toml tags follow the canonical dataset and must not change.
type Element struct {
	Number int    `json:"number" toml:"number"`
	Symbol string `json:"symbol" toml:"symbol"`
	Name   string `json:"name" toml:"name"`

	Category     Text `json:"category" toml:"category"`
	Phase        Text `json:"phase" toml:"phase"`
	Block        Text `json:"block" toml:"block"`
	Appearance   Text `json:"appearance" toml:"appearance"`
	Summary      Text `json:"summary" toml:"summary"`
	DiscoveredBy Text `json:"discovered_by" toml:"discovered_by"`
	NamedBy      Text `json:"named_by" toml:"named_by"`
	Source       Text `json:"source" toml:"source"`

	Period *int `json:"period" toml:"period,omitempty"`
	Group  *int `json:"group" toml:"group,omitempty"`

	AtomicMass               *float64 `json:"atomic_mass" toml:"atomic_mass,omitempty"`
	Density                  *float64 `json:"density" toml:"density,omitempty"`
	Melt                     *float64 `json:"melt" toml:"melt,omitempty"`
	Boil                     *float64 `json:"boil" toml:"boil,omitempty"`
	MolarHeat                *float64 `json:"molar_heat" toml:"molar_heat,omitempty"`
	ElectronAffinity         *float64 `json:"electron_affinity" toml:"electron_affinity,omitempty"`
	ElectronegativityPauling *float64 `json:"electronegativity_pauling" toml:"electronegativity_pauling,omitempty"`

	ElectronConfiguration         Text `json:"electron_configuration" toml:"electron_configuration"`
	ElectronConfigurationSemantic Text `json:"electron_configuration_semantic" toml:"electron_configuration_semantic"`

	Shells             []int     `json:"shells" toml:"shells,omitempty"`
	IonizationEnergies []float64 `json:"ionization_energies" toml:"ionization_energies,omitempty"`

	CPKHex Text `json:"cpk-hex" toml:"cpk-hex"`
}

// identity describes the record for error messages, preferring the symbol.
func (e Element) identity() string {
	switch {
	case e.Symbol != "":
		return "symbol " + quote(e.Symbol)
	case e.Name != "":
		return "name " + quote(e.Name)
	case e.Number != 0:
		return "number " + itoa(e.Number)
	default:
		return "no identity"
	}
}

// normalized returns a copy with every absent text field set to NotAvailable.
func (e Element) normalized() Element {
	for _, f := range []*Text{
		&e.Category, &e.Phase, &e.Block, &e.Appearance, &e.Summary,
		&e.DiscoveredBy, &e.NamedBy, &e.Source,
		&e.ElectronConfiguration, &e.ElectronConfigurationSemantic, &e.CPKHex,
	} {
		if *f == "" {
			*f = NotAvailable
		}
	}
	return e
}
