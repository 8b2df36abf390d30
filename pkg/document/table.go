package document

import (
	"sort"
	"strings"

	"github.com/arthur-debert/chezconf/pkg/errors"
)

// Table is an ordered TOML table.
type Table struct {
	keys   []string
	values map[string]any
}

// New returns an empty table.
func New() *Table {
	return &Table{values: make(map[string]any)}
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in document order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position.
func (t *Table) Set(key string, value any) {
	if t.values == nil {
		t.values = make(map[string]any)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Delete removes key from the table.
func (t *Table) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Lookup follows path through nested tables and returns the value at its end.
func (t *Table) Lookup(path ...string) (any, bool) {
	var current any = t
	for _, key := range path {
		table, ok := current.(*Table)
		if !ok {
			return nil, false
		}
		current, ok = table.Get(key)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Subtable returns the table at path, or nil when the path is missing or
// does not lead to a table.
func (t *Table) Subtable(path ...string) *Table {
	v, ok := t.Lookup(path...)
	if !ok {
		return nil
	}
	table, _ := v.(*Table)
	return table
}

// EnsureTable returns the table at path, creating missing tables on the way.
// A non-table value in the way is a CONFIG_INVALID error.
func (t *Table) EnsureTable(path ...string) (*Table, error) {
	current := t
	for i, key := range path {
		v, ok := current.Get(key)
		if !ok {
			next := New()
			current.Set(key, next)
			current = next
			continue
		}
		next, ok := v.(*Table)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid, "%s is not a table", joinPath(path[:i+1])).
				WithDetail("path", joinPath(path[:i+1]))
		}
		current = next
	}
	return current, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		keys:   make([]string, len(t.keys)),
		values: make(map[string]any, len(t.values)),
	}
	copy(out.keys, t.keys)
	for k, v := range t.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case *Table:
		return v.Clone()
	case []*Table:
		out := make([]*Table, len(v))
		for i, t := range v {
			out[i] = t.Clone()
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// ToMap converts the table into plain Go maps and slices. Key order is lost.
func (t *Table) ToMap() map[string]any {
	if t == nil {
		return nil
	}
	out := make(map[string]any, len(t.values))
	for k, v := range t.values {
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case *Table:
		return v.ToMap()
	case []*Table:
		out := make([]map[string]any, len(v))
		for i, t := range v {
			out[i] = t.ToMap()
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// FromMap builds a table from plain maps. Keys are sorted since maps carry
// no order.
func FromMap(m map[string]any) *Table {
	t := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Set(k, fromPlain(m[k]))
	}
	return t
}

func fromPlain(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return FromMap(v)
	case []map[string]any:
		out := make([]*Table, len(v))
		for i, m := range v {
			out[i] = FromMap(m)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = fromPlain(e)
		}
		return out
	default:
		return v
	}
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
