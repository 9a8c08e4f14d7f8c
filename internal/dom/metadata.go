package dom

import "sort"

// MetaKind discriminates what kind of write a metadata entry records.
type MetaKind int

// Write kinds.
const (
	MetaAttr MetaKind = iota
	MetaProp
	MetaSpecial
	MetaEvent
)

type metaKey struct {
	kind MetaKind
	key  string
}

// Metadata is the last value written per (kind, key). It lives inside
// the node it describes; the zero value is empty and ready to use.
type Metadata struct {
	entries map[metaKey]any
}

// Get returns the last recorded value. Absence reads as nil.
func (m *Metadata) Get(kind MetaKind, key string) (any, bool) {
	v, ok := m.entries[metaKey{kind, key}]

	return v, ok
}

// Record stores value and returns the previous one.
func (m *Metadata) Record(kind MetaKind, key string, value any) any {
	if m.entries == nil {
		m.entries = make(map[metaKey]any)
	}

	k := metaKey{kind, key}
	prev := m.entries[k]
	m.entries[k] = value

	return prev
}

// Keys returns the sorted union of keys recorded under any of kinds.
func (m *Metadata) Keys(kinds ...MetaKind) []string {
	want := make(map[MetaKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	seen := make(map[string]bool)

	var keys []string

	for k := range m.entries {
		if want[k.kind] && !seen[k.key] {
			seen[k.key] = true
			keys = append(keys, k.key)
		}
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.entries)
}
