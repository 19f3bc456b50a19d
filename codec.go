package dualstr

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Decoding always produces an owned Str: the decoder's buffer may be reused
// as soon as Unmarshal returns.

// MarshalText implements encoding.TextMarshaler.
func (s Str) MarshalText() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, s.Len())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. s becomes an owned copy
// of text.
func (s *Str) UnmarshalText(text []byte) error {
	b := make([]byte, len(text))
	copy(b, text)
	s.Release()
	*s = Own(b)
	return nil
}

// MarshalJSON encodes s as a JSON string.
func (s Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.AsString())
}

// UnmarshalJSON decodes a JSON string into an owned Str. A JSON null leaves
// s unchanged, as it does for a plain string.
func (s *Str) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Release()
	*s = Own(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Str) MarshalYAML() (interface{}, error) {
	return s.AsString(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, decoding to an owned Str.
func (s *Str) UnmarshalYAML(value *yaml.Node) error {
	var v string
	if err := value.Decode(&v); err != nil {
		return err
	}
	s.Release()
	*s = Own(v)
	return nil
}
