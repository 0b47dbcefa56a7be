package hpack

import "fmt"

// HeaderField represents a header name-value pair stored in a dynamic
// table entry.
type HeaderField struct {
	Name  string
	Value string
}

// Size returns the RFC accounting size of this header field: both
// octet strings plus the fixed 32-byte overhead (§3).
func (h *HeaderField) Size() int {
	return entrySize(h.Name, h.Value)
}

// DynamicTable implements the per-direction HPACK dynamic table (§3,
// §4.3): an ordered, size-bounded FIFO with newest-first indexing. Two
// independent instances exist per Codec, one for Compress and one for
// Decompress; they are never shared.
type DynamicTable struct {
	entries []HeaderField // entries[0] is newest
	size    int           // current stored size in bytes
	maxSize int           // capacity C
}

// NewDynamicTable creates an empty dynamic table with capacity maxSize.
func NewDynamicTable(maxSize int) *DynamicTable {
	return &DynamicTable{
		entries: make([]HeaderField, 0, 32),
		maxSize: maxSize,
	}
}

// Insert adds a header field at the newest end, evicting from the
// oldest end while size(D)+e > C (§4.3 I2). If the new entry's size
// alone exceeds capacity, the table is left empty and the entry is NOT
// inserted.
func (dt *DynamicTable) Insert(name, value string) {
	field := HeaderField{Name: name, Value: value}
	e := field.Size()

	if e > dt.maxSize {
		dt.evictAll()
		return
	}

	for dt.size+e > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}

	dt.entries = append([]HeaderField{field}, dt.entries...)
	dt.size += e
}

// Get returns the i-th entry (1-based) from the newest end.
func (dt *DynamicTable) Get(i int) (string, string, error) {
	if i < 1 || i > len(dt.entries) {
		return "", "", fmt.Errorf("%w: dynamic index %d (table size %d)", ErrIndexOutOfRange, i, len(dt.entries))
	}
	field := dt.entries[i-1]
	return field.Name, field.Value, nil
}

// FindName returns the 1-based index (from the newest end) of the
// lowest (newest) case-insensitive name match, or false.
func (dt *DynamicTable) FindName(name string) (int, bool) {
	for i, field := range dt.entries {
		if equalFold(field.Name, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// FindFull returns the 1-based index (from the newest end) of the
// lowest (newest) exact name+value match, case-sensitive, or false.
func (dt *DynamicTable) FindFull(name, value string) (int, bool) {
	for i, field := range dt.entries {
		if field.Name == name && field.Value == value {
			return i + 1, true
		}
	}
	return 0, false
}

// SetCapacity sets C := newMax and evicts from the oldest end while
// size(D) > C (§4.3 I3).
func (dt *DynamicTable) SetCapacity(newMax int) {
	dt.maxSize = newMax
	for dt.size > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}
}

// Len returns the number of entries currently held.
func (dt *DynamicTable) Len() int {
	return len(dt.entries)
}

// CurrentSize returns size(D), the current stored size in bytes.
func (dt *DynamicTable) CurrentSize() int {
	return dt.size
}

// Capacity returns C, the current byte capacity.
func (dt *DynamicTable) Capacity() int {
	return dt.maxSize
}

func (dt *DynamicTable) evictOldest() {
	if len(dt.entries) == 0 {
		return
	}
	last := len(dt.entries) - 1
	evicted := dt.entries[last]
	dt.entries = dt.entries[:last]
	dt.size -= evicted.Size()
}

func (dt *DynamicTable) evictAll() {
	dt.entries = dt.entries[:0]
	dt.size = 0
}
