package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Bag is the parameter set for one tool invocation. It preserves JSON key
// insertion order (query strings are built in bag order) and keeps numbers
// as json.Number so large record IDs survive path and query substitution
// without float rounding.
type Bag struct {
	keys   []string
	values map[string]any
}

// NewBag creates an empty parameter bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string]any)}
}

// Set adds or replaces a parameter. First insertion fixes the key's position.
func (b *Bag) Set(key string, value any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// Get returns the value for key and whether it is present.
func (b *Bag) Get(key string) (any, bool) {
	if b == nil || b.values == nil {
		return nil, false
	}
	v, ok := b.values[key]
	return v, ok
}

// Keys returns the parameter names in insertion order.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}
	result := make([]string, len(b.keys))
	copy(result, b.keys)
	return result
}

// Len returns the number of parameters in the bag.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// UnmarshalJSON decodes a JSON object preserving key order. Numbers are
// decoded as json.Number. A JSON null yields an empty bag.
func (b *Bag) UnmarshalJSON(data []byte) error {
	b.keys = nil
	b.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("parameters must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("invalid parameter key %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		b.Set(key, value)
	}

	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON encodes the bag as a JSON object in insertion order.
func (b *Bag) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(b.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// stringValue renders a parameter value for use in a path segment or query
// pair. Nested values fall back to their compact JSON form.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		enc, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(enc)
	}
}
