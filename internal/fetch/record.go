// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import "math"

// record is one loosely-typed JSON object from an upstream response.
// Every accessor returns a documented zero default when the key is absent
// or holds an unexpected shape, so a single odd field never fails the
// whole record. A nil record behaves like an empty object.
type record map[string]any

// asRecord returns v as a record, or nil if v is not a JSON object.
func asRecord(v any) record {
	switch m := v.(type) {
	case map[string]any:
		return record(m)
	case record:
		return m
	}
	return nil
}

// obj returns the nested object at key; nil if absent.
func (r record) obj(key string) record {
	return asRecord(r[key])
}

// str returns the string at key; "" if absent or not a string.
func (r record) str(key string) string {
	s, _ := r[key].(string)
	return s
}

// firstStr returns the string at key, or the first string element when the
// value is a list; "" otherwise.
func (r record) firstStr(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

// list returns the array at key; nil if absent or not an array.
func (r record) list(key string) []any {
	l, _ := r[key].([]any)
	return l
}

// records returns the objects in the array at key, skipping non-objects.
func (r record) records(key string) []record {
	var out []record
	for _, v := range r.list(key) {
		if rec := asRecord(v); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// strs returns the string elements of the array at key, in order.
func (r record) strs(key string) []string {
	var out []string
	for _, v := range r.list(key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// integer returns the integral number at key. ok is false when the key is
// absent, null, or not a whole number.
func (r record) integer(key string) (int, bool) {
	return asInt(r[key])
}

// invertedIndex returns the word→positions map at key. Non-integral
// positions are dropped; an absent key yields nil.
func (r record) invertedIndex(key string) map[string][]int {
	m := r.obj(key)
	if len(m) == 0 {
		return nil
	}
	index := make(map[string][]int, len(m))
	for word, v := range m {
		raw, _ := v.([]any)
		for _, p := range raw {
			if pos, ok := asInt(p); ok {
				index[word] = append(index[word], pos)
			}
		}
	}
	return index
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
