package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value entry of an ordered mapping.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered string-keyed mapping. Iteration and first-value
// extraction follow insertion order (slice order), which keeps "first value"
// deterministic where a plain Go map would not be.
type Fields []Field

// First returns the first value in insertion order.
// The second return is false when the mapping is empty.
func (f Fields) First() (any, bool) {
	if len(f) == 0 {
		return nil, false
	}
	return f[0].Value, true
}

// Get returns the value for key, scanning in insertion order.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (f Fields) Len() int {
	return len(f)
}

// Set returns the mapping with key set to value, replacing an existing
// entry in place or appending a new one.
func (f Fields) Set(key string, value any) Fields {
	for i, field := range f {
		if field.Key == key {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Key: key, Value: value})
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving the key order of the
// document rather than collapsing into an unordered map.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("fields: expected JSON object, got %v", tok)
	}

	out := Fields{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("fields: expected string key, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}
