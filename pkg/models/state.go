package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DeviceState is the raw, type-specific state object of one device. Its
// shape is defined entirely by the hub's device-type union, so it is kept
// as a loose key/value mapping; absent keys are normal. Top-level key order
// is preserved because the fallback state summary shows the first key the
// hub sent.
type DeviceState struct {
	values map[string]any
	keys   []string
}

// UnmarshalJSON walks the object token by token so the original key order
// survives the decode. A JSON null decodes to an empty state.
func (s *DeviceState) UnmarshalJSON(data []byte) error {
	s.values = nil
	s.keys = nil

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("device state: expected object, got %v", tok)
	}

	s.values = make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if _, seen := s.values[key]; !seen {
			s.keys = append(s.keys, key)
		}
		s.values[key] = value
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON reproduces the object with its original key order.
func (s DeviceState) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("null"), nil
	}
	buf := []byte{'{'}
	for i, key := range s.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// Get returns the value for key and whether it was present.
func (s DeviceState) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key was present in the state object.
func (s DeviceState) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the top-level keys in the order the hub sent them.
func (s DeviceState) Keys() []string {
	return s.keys
}

// FirstKey returns the first key of the state object, if any.
func (s DeviceState) FirstKey() (string, bool) {
	if len(s.keys) == 0 {
		return "", false
	}
	return s.keys[0], true
}

// Len returns the number of top-level keys.
func (s DeviceState) Len() int {
	return len(s.keys)
}
