// Package fixtures holds canonical header lists paired with their
// HPACK wire encodings, used by the test suite and by hpackctl's
// "fixtures" subcommand to sanity-check a build's codec against known
// vectors.
package fixtures

import (
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"hpackctl/internal/shared/compression/hpack"
)

// Fixture pairs a header list with the wire bytes a correct encoder
// produces for it, given a specific dynamic-table and Huffman-policy
// starting state.
type Fixture struct {
	Name    string           `msgpack:"name"`
	Headers hpack.HeaderList `msgpack:"headers"`
	WireHex string           `msgpack:"wire_hex"`
}

// Wire decodes the fixture's hex-encoded wire bytes.
func (f Fixture) Wire() ([]byte, error) {
	b, err := hex.DecodeString(f.WireHex)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %s: bad wire_hex: %w", f.Name, err)
	}
	return b, nil
}

// Builtin are the vectors carried in the binary, drawn from the
// non-Huffman request examples of the base RFC this draft supersedes.
// All use an empty starting dynamic table and always-Huffman disabled
// by construction (literal forms only), so they exercise the decoder
// independent of any Huffman table bugs.
var Builtin = []Fixture{
	{
		Name:    "indexed-method-get",
		Headers: hpack.HeaderList{{Name: ":method", Value: "GET"}},
		WireHex: "82",
	},
	{
		Name: "request-with-new-authority",
		Headers: hpack.HeaderList{
			{Name: ":method", Value: "GET"},
			{Name: ":scheme", Value: "http"},
			{Name: ":path", Value: "/"},
			{Name: ":authority", Value: "www.example.com"},
		},
		WireHex: "828684410f7777772e6578616d706c652e636f6d",
	},
	{
		Name:    "literal-without-indexing-path",
		Headers: hpack.HeaderList{{Name: ":path", Value: "/sample/path"}},
		WireHex: "040c2f73616d706c652f70617468",
	},
	{
		Name:    "literal-never-indexed-password",
		Headers: hpack.HeaderList{{Name: "password", Value: "secret"}},
		WireHex: "100870617373776f726406736563726574",
	},
	{
		Name:    "literal-with-indexing-custom-key",
		Headers: hpack.HeaderList{{Name: "custom-key", Value: "custom-header"}},
		WireHex: "400a637573746f6d2d6b65790d637573746f6d2d686561646572",
	},
}

// Marshal serializes a fixture set with msgpack, the format the rest
// of the source's wire codecs use for compact binary payloads.
func Marshal(set []Fixture) ([]byte, error) {
	return msgpack.Marshal(set)
}

// Unmarshal deserializes a fixture set previously produced by Marshal.
func Unmarshal(data []byte) ([]Fixture, error) {
	var set []Fixture
	if err := msgpack.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("fixtures: unmarshal: %w", err)
	}
	return set, nil
}

// Verify decodes f.Wire() with a fresh Codec and reports whether the
// result matches f.Headers exactly.
func Verify(f Fixture) error {
	wire, err := f.Wire()
	if err != nil {
		return err
	}

	codec := hpack.New()
	got, err := codec.Decompress(wire)
	if err != nil {
		return fmt.Errorf("fixtures: %s: decompress: %w", f.Name, err)
	}

	if len(got) != len(f.Headers) {
		return fmt.Errorf("fixtures: %s: got %d headers, want %d", f.Name, len(got), len(f.Headers))
	}
	for i := range got {
		if got[i] != f.Headers[i] {
			return fmt.Errorf("fixtures: %s: header %d: got %+v, want %+v", f.Name, i, got[i], f.Headers[i])
		}
	}
	return nil
}
