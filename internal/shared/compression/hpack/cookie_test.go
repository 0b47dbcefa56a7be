package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReassembleCookiesJoinsWithSemicolonSpace(t *testing.T) {
	list := HeaderList{
		{Name: ":method", Value: "GET"},
		{Name: "cookie", Value: "a=1"},
		{Name: "cookie", Value: "b=2"},
		{Name: "cookie", Value: "c=3"},
	}

	out := reassembleCookies(list)

	require.Len(t, out, 2)
	assert.Equal(t, Header{Name: ":method", Value: "GET"}, out[0])
	assert.Equal(t, Header{Name: "cookie", Value: "a=1; b=2; c=3"}, out[1])
}

func TestReassembleCookiesNoTrailingDelimiter(t *testing.T) {
	list := HeaderList{{Name: "cookie", Value: "a=1"}}
	out := reassembleCookies(list)
	assert.Equal(t, "a=1", out[0].Value)
}

func TestReassembleCookiesCaseInsensitiveName(t *testing.T) {
	list := HeaderList{
		{Name: "Cookie", Value: "a=1"},
		{Name: "cookie", Value: "b=2"},
	}
	out := reassembleCookies(list)
	assert.Len(t, out, 1)
	assert.Equal(t, "cookie", out[0].Name)
	assert.Equal(t, "a=1; b=2", out[0].Value)
}

func TestReassembleCookiesPassthroughWhenAbsent(t *testing.T) {
	list := HeaderList{{Name: ":method", Value: "GET"}}
	out := reassembleCookies(list)
	assert.Equal(t, list, out)
}

func TestReassembleCookiesPreservesRelativeOrderOfOthers(t *testing.T) {
	list := HeaderList{
		{Name: ":method", Value: "GET"},
		{Name: "cookie", Value: "a=1"},
		{Name: ":path", Value: "/"},
		{Name: "cookie", Value: "b=2"},
	}
	out := reassembleCookies(list)
	assert.Equal(t, HeaderList{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/"},
		{Name: "cookie", Value: "a=1; b=2"},
	}, out)
}
