package reports

import (
	"bytes"
	"encoding/json"
)

// Grouping is a string-keyed mapping that remembers first-seen key order.
// Lookups of absent keys yield the zero value, so an average for a policy type
// with no claims reads as 0.
type Grouping[K ~string, V any] struct {
	keys   []K
	values map[K]V
}

func newGrouping[K ~string, V any]() *Grouping[K, V] {
	return &Grouping[K, V]{values: make(map[K]V)}
}

// Get returns the value for k, or the zero value when k was never observed.
func (g *Grouping[K, V]) Get(k K) V {
	return g.values[k]
}

// Lookup returns the value for k and whether it was observed.
func (g *Grouping[K, V]) Lookup(k K) (V, bool) {
	v, ok := g.values[k]
	return v, ok
}

// Keys returns keys in first-seen order.
func (g *Grouping[K, V]) Keys() []K {
	return append([]K(nil), g.keys...)
}

func (g *Grouping[K, V]) Len() int {
	return len(g.keys)
}

// update applies fn to the current value for k, recording k on first sight.
func (g *Grouping[K, V]) update(k K, fn func(V) V) {
	cur, ok := g.values[k]
	if !ok {
		g.keys = append(g.keys, k)
	}
	g.values[k] = fn(cur)
}

// MarshalJSON emits a JSON object whose members follow first-seen key order.
func (g *Grouping[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(g.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
