package silesiaai

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Object is a decoded JSON object that remembers the order in which its
// keys appeared. Values stay raw until a caller decodes them.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewObject builds an Object from alternating key/value pairs, mostly for
// tests. Values are marshaled with encoding/json.
func NewObject(pairs ...any) (*Object, error) {
	if len(pairs)%2 != 0 {
		return nil, Errorf(EINVALID, "odd number of key/value arguments")
	}
	o := &Object{values: make(map[string]json.RawMessage)}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, Errorf(EINVALID, "key at position %d is not a string", i)
		}
		raw, err := json.Marshal(pairs[i+1])
		if err != nil {
			return nil, err
		}
		o.set(key, raw)
	}
	return o, nil
}

// Keys returns the object keys in document order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Raw returns the undecoded value stored under key.
func (o *Object) Raw(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// Decode unmarshals the value stored under key into v.
// Returns ENOTFOUND if the key is absent.
func (o *Object) Decode(key string, v any) error {
	raw, ok := o.values[key]
	if !ok {
		return Errorf(ENOTFOUND, "key %q not found", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return WrapErrorf(ESHAPE, err, "decoding %q", key)
	}
	return nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. A repeated key
// keeps its first position and its last value. JSON null leaves the object empty.
func (o *Object) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = make(map[string]json.RawMessage)

	if !gjson.ValidBytes(data) {
		return Errorf(EMALFORMED, "invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		return nil
	}
	if !result.IsObject() {
		return Errorf(ESHAPE, "expected JSON object, got %s", result.Type)
	}

	result.ForEach(func(key, value gjson.Result) bool {
		o.set(key.String(), json.RawMessage(value.Raw))
		return true
	})
	return nil
}

// MarshalJSON encodes the object with keys in their original order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) set(key string, raw json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

// EmbeddedState is the normalized client cache a server-rendered page ships
// for hydration. Keys carry type and identity inline, e.g. "Group:123" or
// "Event:456". It is parsed once per page and only read afterwards.
type EmbeddedState struct {
	Object
}

// Deref decodes the entity that ref points at into v.
// Returns ENOTFOUND when the reference is dangling.
func (s *EmbeddedState) Deref(ref EntityRef, v any) error {
	if ref.Key == "" {
		return Errorf(ENOTFOUND, "empty entity reference")
	}
	raw, ok := s.Raw(ref.Key)
	if !ok {
		return Errorf(ENOTFOUND, "entity %q not found in embedded state", ref.Key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return WrapErrorf(ESHAPE, err, "decoding entity %q", ref.Key)
	}
	return nil
}

// EntityRef is a lookup handle into EmbeddedState. It never owns the entity.
type EntityRef struct {
	Key string `json:"__ref"`
}

// Edge is one entry of a paginated collection, pointing at an entity.
type Edge struct {
	Node EntityRef `json:"node"`
}
