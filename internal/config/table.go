package config

// Entry is one key of a Table. A nil Value is the null state.
type Entry struct {
	Key   string
	Value *string
}

// Table is an ordered mapping of option keys to values. Keys are unique and
// iterate in the order they were first set; the table is never re-sorted.
type Table struct {
	Entries []Entry
}

// NewTable builds a table from entries, applying Set to each in order.
func NewTable(entries ...Entry) Table {
	var t Table
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
	return t
}

// Set assigns a value to key. An existing key keeps its position.
func (t *Table) Set(key string, value *string) {
	for i := range t.Entries {
		if t.Entries[i].Key == key {
			t.Entries[i].Value = value
			return
		}
	}
	t.Entries = append(t.Entries, Entry{Key: key, Value: value})
}

// Lookup returns the value stored for key. found is false when the key is
// not part of the table, which is distinct from a present null value.
func (t Table) Lookup(key string) (value *string, found bool) {
	for _, e := range t.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in iteration order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Len reports the number of keys.
func (t Table) Len() int {
	return len(t.Entries)
}

// Merge sets every entry of other into t, in other's order.
func (t *Table) Merge(other Table) {
	for _, e := range other.Entries {
		t.Set(e.Key, e.Value)
	}
}

// String returns a pointer to s, for building literal tables.
func String(s string) *string {
	return &s
}
