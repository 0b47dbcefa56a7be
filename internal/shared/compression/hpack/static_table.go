package hpack

import (
	"fmt"
	"strings"
	"sync"
)

// StaticTable implements the HPACK static table (RFC 7541 Appendix A /
// draft-09 static table). The static table is predefined, immutable,
// and shared by both the encoding and decoding directions.
type StaticTable struct {
	entries []HeaderField
	nameMap map[string][]uint32 // name -> indices, lowest (first-published) index first
}

var (
	staticTableInstance *StaticTable
	staticTableOnce     sync.Once
)

// GetStaticTable returns the process-wide static table singleton.
func GetStaticTable() *StaticTable {
	staticTableOnce.Do(func() {
		staticTableInstance = newStaticTable()
	})
	return staticTableInstance
}

// newStaticTable builds the 61-entry draft-09 static table.
func newStaticTable() *StaticTable {
	entries := []HeaderField{
		{Name: ":authority", Value: ""},
		{Name: ":method", Value: "GET"},
		{Name: ":method", Value: "POST"},
		{Name: ":path", Value: "/"},
		{Name: ":path", Value: "/index.html"},
		{Name: ":scheme", Value: "http"},
		{Name: ":scheme", Value: "https"},
		{Name: ":status", Value: "200"},
		{Name: ":status", Value: "204"},
		{Name: ":status", Value: "206"},
		{Name: ":status", Value: "304"},
		{Name: ":status", Value: "400"},
		{Name: ":status", Value: "404"},
		{Name: ":status", Value: "500"},
		{Name: "accept-charset", Value: ""},
		{Name: "accept-encoding", Value: "gzip, deflate"},
		{Name: "accept-language", Value: ""},
		{Name: "accept-ranges", Value: ""},
		{Name: "accept", Value: ""},
		{Name: "access-control-allow-origin", Value: ""},
		{Name: "age", Value: ""},
		{Name: "allow", Value: ""},
		{Name: "authorization", Value: ""},
		{Name: "cache-control", Value: ""},
		{Name: "content-disposition", Value: ""},
		{Name: "content-encoding", Value: ""},
		{Name: "content-language", Value: ""},
		{Name: "content-length", Value: ""},
		{Name: "content-location", Value: ""},
		{Name: "content-range", Value: ""},
		{Name: "content-type", Value: ""},
		{Name: "cookie", Value: ""},
		{Name: "date", Value: ""},
		{Name: "etag", Value: ""},
		{Name: "expect", Value: ""},
		{Name: "expires", Value: ""},
		{Name: "from", Value: ""},
		{Name: "host", Value: ""},
		{Name: "if-match", Value: ""},
		{Name: "if-modified-since", Value: ""},
		{Name: "if-none-match", Value: ""},
		{Name: "if-range", Value: ""},
		{Name: "if-unmodified-since", Value: ""},
		{Name: "last-modified", Value: ""},
		{Name: "link", Value: ""},
		{Name: "location", Value: ""},
		{Name: "max-forwards", Value: ""},
		{Name: "proxy-authenticate", Value: ""},
		{Name: "proxy-authorization", Value: ""},
		{Name: "range", Value: ""},
		{Name: "referer", Value: ""},
		{Name: "refresh", Value: ""},
		{Name: "retry-after", Value: ""},
		{Name: "server", Value: ""},
		{Name: "set-cookie", Value: ""},
		{Name: "strict-transport-security", Value: ""},
		{Name: "transfer-encoding", Value: ""},
		{Name: "user-agent", Value: ""},
		{Name: "vary", Value: ""},
		{Name: "via", Value: ""},
		{Name: "www-authenticate", Value: ""},
	}

	nameMap := make(map[string][]uint32, len(entries))
	for i, entry := range entries {
		nameMap[entry.Name] = append(nameMap[entry.Name], uint32(i))
	}

	return &StaticTable{
		entries: entries,
		nameMap: nameMap,
	}
}

// Get retrieves a header field by 0-based index.
func (st *StaticTable) Get(index uint32) (string, string, error) {
	if index >= uint32(len(st.entries)) {
		return "", "", fmt.Errorf("%w: static index %d (table size %d)", ErrIndexOutOfRange, index, len(st.entries))
	}

	field := st.entries[index]
	return field.Name, field.Value, nil
}

// FindExact searches for a case-sensitive exact name+value match.
// Returns the 0-based index and true if found.
func (st *StaticTable) FindExact(name, value string) (uint32, bool) {
	indices, exists := st.nameMap[name]
	if !exists {
		return 0, false
	}

	for _, index := range indices {
		if st.entries[index].Value == value {
			return index, true
		}
	}

	return 0, false
}

// FindName searches for a name-only match. Returns the lowest (first
// published) matching 0-based index and true if found.
func (st *StaticTable) FindName(name string) (uint32, bool) {
	indices, exists := st.nameMap[name]
	if !exists || len(indices) == 0 {
		return 0, false
	}

	return indices[0], true
}

// Size returns the number of entries in the static table.
func (st *StaticTable) Size() int {
	return len(st.entries)
}

// staticTableSize is the combined-index offset (§3) at which dynamic
// table indices begin: index 1..staticTableSize addresses the static
// table, staticTableSize+1.. the dynamic table.
const staticTableSize = 61

// staticGet retrieves a static table entry by 1-based combined index.
// Callers are expected to have already bounds-checked against
// staticTableSize.
func staticGet(index int) (string, string) {
	name, value, _ := GetStaticTable().Get(uint32(index - 1))
	return name, value
}

// staticFindFull searches the static table for an exact name+value
// match, returning a 1-based combined index.
func staticFindFull(name, value string) (int, bool) {
	idx, ok := GetStaticTable().FindExact(name, value)
	if !ok {
		return 0, false
	}
	return int(idx) + 1, true
}

// staticFindName searches the static table for a case-insensitive
// name-only match, returning a 1-based combined index.
func staticFindName(name string) (int, bool) {
	idx, ok := GetStaticTable().FindName(strings.ToLower(name))
	if !ok {
		return 0, false
	}
	return int(idx) + 1, true
}
