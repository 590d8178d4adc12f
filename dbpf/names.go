package dbpf

import "sort"

// NameEntry is one instance->name pair from a gathered name map.
type NameEntry struct {
	Instance uint64
	Name     string
}

// NameMap is the result of Archive.GatherNames: an instance->name mapping
// that also exposes its entries in ascending instance order.
type NameMap struct {
	byInstance map[uint64]string
}

// Lookup returns the name for instance, if any.
func (m *NameMap) Lookup(instance uint64) (string, bool) {
	name, ok := m.byInstance[instance]
	return name, ok
}

// Len returns the number of distinct instances.
func (m *NameMap) Len() int { return len(m.byInstance) }

// Entries returns every pair, ordered by ascending instance.
func (m *NameMap) Entries() []NameEntry {
	entries := make([]NameEntry, 0, len(m.byInstance))
	for instance, name := range m.byInstance {
		entries = append(entries, NameEntry{Instance: instance, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Instance < entries[j].Instance })
	return entries
}
