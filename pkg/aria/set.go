package aria

import (
	"maps"
	"sort"
)

// AttributeSet maps vocabulary keys to typed values. Sets returned by this
// package are freshly allocated and owned by the caller.
type AttributeSet map[Key]Value

// Attribute is a single key/value pair of a set.
type Attribute struct {
	Key   Key
	Value Value
}

// Merge folds sets left to right into a new set. A key in a later set overrides
// the same key from an earlier one. Merge with no arguments returns an empty set.
// Inputs are never modified and nil sets are skipped.
func Merge(sets ...AttributeSet) AttributeSet {
	size := 0
	for _, set := range sets {
		size += len(set)
	}

	merged := make(AttributeSet, size)
	for _, set := range sets {
		maps.Copy(merged, set)
	}
	return merged
}

// Clone returns a shallow copy of s. Values are immutable scalars, so the copy
// shares no mutable state with s.
func (s AttributeSet) Clone() AttributeSet {
	return Merge(s)
}

// Get returns the value stored for key.
func (s AttributeSet) Get(key Key) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Has reports whether key is present.
func (s AttributeSet) Has(key Key) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys of s in lexical order.
func (s AttributeSet) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Attributes returns the pairs of s ordered by key.
func (s AttributeSet) Attributes() []Attribute {
	keys := s.Keys()
	attrs := make([]Attribute, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Attribute{Key: k, Value: s[k]})
	}
	return attrs
}

// Strings projects s onto plain attribute names and their string forms.
func (s AttributeSet) Strings() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		if v == nil {
			continue
		}
		out[string(k)] = v.String()
	}
	return out
}

// Equal reports whether s and other hold the same keys with values of the same
// domain and string form.
func (s AttributeSet) Equal(other AttributeSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok {
			return false
		}
		if !sameValue(v, ov) {
			return false
		}
	}
	return true
}

func sameValue(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Domain() == b.Domain() && a.String() == b.String()
}
