package access

import (
	"sort"

	"github.com/finhub/console/internal/core/domain"
)

// Entry is one row of a capability table.
type Entry struct {
	Capability Capability
	Roles      []domain.Role
}

type roleSet map[domain.Role]struct{}

// Table maps capability keys to the roles allowed to use them. A Table is
// immutable once built: it has no mutators and never hands out its internals.
type Table struct {
	entries map[Capability]roleSet
}

// NewTable builds a table from entries. Entries sharing a key are merged.
func NewTable(entries ...Entry) *Table {
	t := &Table{entries: make(map[Capability]roleSet, len(entries))}
	for _, e := range entries {
		set, ok := t.entries[e.Capability]
		if !ok {
			set = make(roleSet, len(e.Roles))
			t.entries[e.Capability] = set
		}
		for _, r := range e.Roles {
			set[r] = struct{}{}
		}
	}
	return t
}

// IsAllowed reports whether role may use c. Keys absent from the table deny
// every role.
func (t *Table) IsAllowed(role domain.Role, c Capability) bool {
	if t == nil {
		return false
	}
	set, ok := t.entries[c]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}

// Has reports whether c has an entry.
func (t *Table) Has(c Capability) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[c]
	return ok
}

// Keys returns every key in the table, sorted.
func (t *Table) Keys() []Capability {
	if t == nil {
		return nil
	}
	keys := make([]Capability, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// RolesFor returns the roles allowed for c, sorted. Nil when c is absent.
func (t *Table) RolesFor(c Capability) []domain.Role {
	if t == nil {
		return nil
	}
	set, ok := t.entries[c]
	if !ok {
		return nil
	}
	out := make([]domain.Role, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CapabilitiesFor returns every key granted to role, sorted.
func (t *Table) CapabilitiesFor(role domain.Role) []Capability {
	var out []Capability
	for _, k := range t.Keys() {
		if t.IsAllowed(role, k) {
			out = append(out, k)
		}
	}
	return out
}

// Entries returns a copy of the table contents, sorted by key.
func (t *Table) Entries() []Entry {
	keys := t.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Capability: k, Roles: t.RolesFor(k)})
	}
	return out
}
