package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed data/elements.json
var embeddedDataset []byte

// EmbeddedSource names the built-in dataset in diagnostics.
const EmbeddedSource = "embedded:data/elements.json"

// document is the on-disk shape shared by the JSON and TOML sources.
type document struct {
	Elements []Element `json:"elements" toml:"elements"`
}

var loadEmbedded = sync.OnceValues(func() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedDataset))
})

// Embedded returns the catalog built from the dataset compiled into the
// binary. It is parsed on first use and shared afterwards.
func Embedded() (*Catalog, error) {
	return loadEmbedded()
}

// Load reads a JSON document of the form {"elements": [...]} and builds a
// catalog from it, preserving record order.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	return fromDocument(doc)
}

// LoadTOML reads a TOML document made of [[elements]] tables using the same
// keys as the JSON source.
func LoadTOML(r io.Reader) (*Catalog, error) {
	var doc document
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode toml: %w", err)
	}
	return fromDocument(doc)
}

// LoadFile reads a catalog from path, choosing the decoder by extension
// (.json or .toml).
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return Load(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return nil, fmt.Errorf("catalog: unsupported source format %q (want .json or .toml)", ext)
	}
}

// Open returns the catalog at path, or the embedded catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Embedded()
	}
	return LoadFile(path)
}

func fromDocument(doc document) (*Catalog, error) {
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("catalog: source has no elements: %w", ErrMalformedSource)
	}
	return New(doc.Elements)
}
