package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dnsvet/dnsvet/model"
)

// ResultEntry is the serialized status of one requested name
type ResultEntry struct {
	Name       string       `json:"name"`
	Status     model.Status `json:"status"`
	Reason     string       `json:"reason,omitempty"`
	AnalyzedAt time.Time    `json:"analyzedAt"`
	Chain      []string     `json:"chain,omitempty"`
}

// Document is the ordered mapping from requested name to its result. Key
// order on serialization is exactly the insertion order, which the pipeline
// guarantees to be the de-duplicated input order of successfully resolved
// names.
type Document struct {
	keys    []string
	entries map[string]*ResultEntry
}

func NewDocument() *Document {
	return &Document{
		entries: make(map[string]*ResultEntry),
	}
}

// Append adds an entry under the name, keeping the original position if the
// name is already present
func (d *Document) Append(name string, entry *ResultEntry) {
	if _, ok := d.entries[name]; !ok {
		d.keys = append(d.keys, name)
	}

	d.entries[name] = entry
}

// Names returns the keys in insertion order
func (d *Document) Names() []string {
	names := make([]string, len(d.keys))
	copy(names, d.keys)

	return names
}

// Get returns the entry for a name
func (d *Document) Get(name string) (*ResultEntry, bool) {
	entry, ok := d.entries[name]

	return entry, ok
}

// Len returns the number of entries
func (d *Document) Len() int {
	return len(d.keys)
}

// MarshalJSON emits the entries as a JSON object in insertion order
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, name := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(d.entries[name])
		if err != nil {
			return nil, err
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON restores the document including its key order
func (d *Document) UnmarshalJSON(data []byte) error {
	d.keys = nil
	d.entries = make(map[string]*ResultEntry)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}

		var entry ResultEntry
		if err := dec.Decode(&entry); err != nil {
			return err
		}

		d.Append(name, &entry)
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// Write serializes the document, compact or pretty, to the destination
func (d *Document) Write(w io.Writer, pretty bool) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(d, "", "  ")
	} else {
		data, err = json.Marshal(d)
	}

	if err != nil {
		return fmt.Errorf("can't serialize document: %w", err)
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("can't write document: %w", err)
	}

	return nil
}
