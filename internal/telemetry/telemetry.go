// Package telemetry records the lookup history as a JSONL event stream. Every
// resolve and search issued from the CLI or the interactive view is appended
// as one structured JSON line, so past lookups can be replayed or tailed.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindLookup       = "lookup"
	KindSearch       = "search"
)

// Event represents a single history record. Each event carries a timestamp,
// a kind tag, the session that produced it, and kind-specific data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// LookupData is the payload of a KindLookup event.
type LookupData struct {
	Query    string `json:"query"`
	Found    bool   `json:"found"`
	Strategy string `json:"strategy,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

// SearchData is the payload of a KindSearch event.
type SearchData struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
}

// Emitter appends events to a JSONL file. It is safe for concurrent use by
// multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	now     func() time.Time
	mu      sync.Mutex
}

// NewEmitter creates an Emitter that appends JSONL events to the file at
// path under a fresh session id. The file and its parent directories are
// created if they do not exist.
func NewEmitter(path string) (*Emitter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
		now:     time.Now,
	}, nil
}

// Open returns a nil (no-op) Emitter when path is empty and NewEmitter(path)
// otherwise.
func Open(path string) (*Emitter, error) {
	if path == "" {
		return nil, nil
	}
	return NewEmitter(path)
}

// Session returns the id stamped on every event from this emitter.
func (e *Emitter) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event. A zero Timestamp is set to the current time and
// an empty Session to the emitter's session. Calling Emit on a nil Emitter is
// a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	if evt.Session == "" {
		evt.Session = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Lookup records the outcome of resolving query.
func (e *Emitter) Lookup(data LookupData) error {
	return e.Emit(Event{Kind: KindLookup, Data: data})
}

// Search records the symbols a search returned.
func (e *Emitter) Search(query string, symbols []string) error {
	if symbols == nil {
		symbols = []string{}
	}
	return e.Emit(Event{Kind: KindSearch, Data: SearchData{Query: query, Results: symbols}})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
