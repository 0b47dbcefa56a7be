package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTableInsertAndGet(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("custom-key", "custom-header")

	name, value, err := dt.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "custom-key", name)
	assert.Equal(t, "custom-header", value)
	assert.Equal(t, entrySize("custom-key", "custom-header"), dt.CurrentSize())
}

func TestDynamicTableNewestFirst(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("a", "1")
	dt.Insert("b", "2")

	name, value, err := dt.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", name)
	assert.Equal(t, "2", value)

	name, value, err = dt.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, "1", value)
}

func TestDynamicTableGetOutOfRange(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("a", "1")

	_, _, err := dt.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, _, err = dt.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDynamicTableEvictsOldestWhenOverCapacity(t *testing.T) {
	// Capacity fits exactly one entry the size of ("a","1"): 1+1+32 = 34.
	dt := NewDynamicTable(34)
	dt.Insert("a", "1")
	assert.Equal(t, 1, dt.Len())

	dt.Insert("b", "2")
	assert.Equal(t, 1, dt.Len(), "inserting a same-size entry must evict the oldest")

	name, value, err := dt.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", name)
	assert.Equal(t, "2", value)
}

func TestDynamicTableEntryLargerThanCapacityEmptiesTable(t *testing.T) {
	dt := NewDynamicTable(34)
	dt.Insert("a", "1")
	require.Equal(t, 1, dt.Len())

	dt.Insert("this-name-is-way-too-long-to-fit", "and-so-is-this-value-by-itself")
	assert.Equal(t, 0, dt.Len())
	assert.Equal(t, 0, dt.CurrentSize())
}

func TestDynamicTableSetCapacityEvicts(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("a", "1")
	dt.Insert("b", "2")
	require.Equal(t, 2, dt.Len())

	dt.SetCapacity(34)
	assert.Equal(t, 1, dt.Len())
	name, _, err := dt.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", name, "shrinking must evict the oldest entry and keep the newest")

	dt.SetCapacity(0)
	assert.Equal(t, 0, dt.Len())
}

func TestDynamicTableFindNameCaseInsensitive(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("Custom-Key", "v1")

	idx, ok := dt.FindName("custom-key")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestDynamicTableFindFullCaseSensitive(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("custom-key", "custom-header")

	_, ok := dt.FindFull("Custom-Key", "custom-header")
	assert.False(t, ok)

	idx, ok := dt.FindFull("custom-key", "custom-header")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestDynamicTableFindPrefersNewest(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Insert("x-thing", "one")
	dt.Insert("x-thing", "two")

	idx, ok := dt.FindName("x-thing")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	name, value, err := dt.Get(idx)
	require.NoError(t, err)
	assert.Equal(t, "x-thing", name)
	assert.Equal(t, "two", value)
}
