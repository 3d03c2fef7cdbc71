package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// DefaultDestination is the destination marker for the current working directory.
const DefaultDestination = "."

// ErrNotObject is returned when a manifest's top-level value is not a JSON object.
var ErrNotObject = errors.New("manifest must be a JSON object")

type field struct {
	key   string
	value json.RawMessage
}

// Manifest is a parsed top-level JSON object that remembers the order of its keys.
// Field values are kept as raw JSON so untouched fields are written back as read.
type Manifest struct {
	fields          []field
	trailingNewline bool
}

// Parse decodes a manifest from JSON. Duplicate keys keep the position of the
// first occurrence and the value of the last one.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	m := &Manifest{trailingNewline: bytes.HasSuffix(data, []byte("\n"))}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding manifest key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding manifest: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding manifest field %q: %w", key, err)
		}
		m.set(key, raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decoding manifest: unexpected data after top-level object")
	}

	return m, nil
}

// Load reads and parses the manifest at path.
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Save serializes the manifest and overwrites the file at path.
func (m *Manifest) Save(fsys afero.Fs, path string, perm os.FileMode) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, perm); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Keys returns the manifest's top-level keys in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.key
	}
	return keys
}

// Raw returns the raw JSON value stored under key.
func (m *Manifest) Raw(key string) (json.RawMessage, bool) {
	for _, f := range m.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Name returns the manifest's name field. The boolean is false when the
// field is missing or not a string.
func (m *Manifest) Name() (string, bool) {
	return m.String("name")
}

// SetName sets the manifest's name field, appending it when missing.
func (m *Manifest) SetName(name string) error {
	return m.SetString("name", name)
}

// String returns the string value stored under key.
func (m *Manifest) String(key string) (string, bool) {
	raw, ok := m.Raw(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// SetString stores a string value under key. Existing keys keep their position.
func (m *Manifest) SetString(key, value string) error {
	raw, err := encodeString(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	m.set(key, raw)
	return nil
}

// Engines returns the string entries of the manifest's engines object.
func (m *Manifest) Engines() map[string]string {
	raw, ok := m.Raw("engines")
	if !ok {
		return nil
	}
	var all map[string]interface{}
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil
	}
	engines := make(map[string]string, len(all))
	for k, v := range all {
		if s, ok := v.(string); ok {
			engines[k] = s
		}
	}
	return engines
}

// Marshal serializes the manifest with two-space indentation. A trailing
// newline is written only if the parsed source ended with one.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeString(f.key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	if m.trailingNewline {
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

func (m *Manifest) set(key string, value json.RawMessage) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].value = value
			return
		}
	}
	m.fields = append(m.fields, field{key: key, value: value})
}

// encodeString encodes s as a JSON string without HTML escaping.
func encodeString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
