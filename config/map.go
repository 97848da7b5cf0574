package config

import (
	"strings"
)

// Source feeds key/value pairs into a configuration tree.
type Source interface {
	Apply(tree Map) error
}

// Map is a nested string-keyed configuration tree. It implements Source,
// so one tree can seed another.
type Map map[string]any

// FromMap returns a source over an ordinary nested map.
func FromMap(m map[string]any) Map {
	return Map(m)
}

// Apply deep-merges m into tree: nested maps merge key by key, scalars
// overwrite whatever they land on.
func (m Map) Apply(tree Map) (err error) {
	for key, value := range m {
		var sub Map
		switch x := value.(type) {
		case Map:
			sub = x
		case map[string]any:
			sub = Map(x)
		default:
			tree[key] = value
			continue
		}

		dst, ok := tree[key].(Map)
		if !ok {
			dst = Map{}
			tree[key] = dst
		}
		err = sub.Apply(dst)
		if err != nil {
			return
		}
	}
	return
}

// Get returns the value at a dotted path.
func (m Map) Get(path string) (value any, ok bool) {
	keys := strings.Split(path, ".")
	node := m
	for n, key := range keys {
		v, found := node[key]
		if !found {
			return
		}
		if n == len(keys)-1 {
			value = v
			ok = true
			return
		}
		switch sub := v.(type) {
		case Map:
			node = sub
		case map[string]any:
			node = Map(sub)
		default:
			return
		}
	}
	return
}

// Set stores value at a dotted path, creating intermediate maps and
// overwriting scalars on the way down.
func (m Map) Set(path string, value any) {
	keys := strings.Split(path, ".")
	node := m
	for _, key := range keys[:len(keys)-1] {
		switch sub := node[key].(type) {
		case Map:
			node = sub
		case map[string]any:
			node = Map(sub)
		default:
			next := Map{}
			node[key] = next
			node = next
		}
	}
	node[keys[len(keys)-1]] = value
}
