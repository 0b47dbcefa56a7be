package hpack

const (
	flagIndexed             byte = 0x80 // 1xxxxxxx, prefix 7
	flagLiteralIncremental  byte = 0x40 // 01xxxxxx, prefix 6
	flagLiteralWithoutIndex byte = 0x00 // 0000xxxx, prefix 4
	flagLiteralNeverIndexed byte = 0x10 // 0001xxxx, prefix 4
	flagDynamicSizeUpdate   byte = 0x20 // 001xxxxx, prefix 5
)

// HuffmanPolicy controls which of the two legal string encodings (§4.2)
// the encoder chooses.
type HuffmanPolicy int

const (
	// HuffmanAlways always emits the Huffman form, matching the
	// source's default behavior.
	HuffmanAlways HuffmanPolicy = iota
	// HuffmanShortest emits whichever of the Huffman or literal forms
	// is smaller.
	HuffmanShortest
)

// Encoder turns a header list into HPACK-encoded bytes using its own
// dynamic table. A Codec owns exactly one Encoder for its lifetime;
// encoders are never shared across Codec instances (§5).
type Encoder struct {
	dynamicTable *DynamicTable
	buf          []byte
	policy       HuffmanPolicy
}

// NewEncoder creates an encoder with an empty dynamic table of the
// given capacity.
func NewEncoder(maxTableSize int) *Encoder {
	return &Encoder{
		dynamicTable: NewDynamicTable(maxTableSize),
		buf:          make([]byte, 0, 256),
		policy:       HuffmanAlways,
	}
}

// SetHuffmanPolicy overrides the default always-Huffman string policy.
func (e *Encoder) SetHuffmanPolicy(p HuffmanPolicy) {
	e.policy = p
}

func (e *Encoder) encodeStringLiteral(s string) []byte {
	if e.policy == HuffmanShortest {
		return encodeStringShortest(s)
	}
	return encodeString(s, true)
}

// compress implements the per-call body of §4.4 steps 1-3. pending
// holds any dynamic-table-size-update values drained from the settings
// tracker that must be emitted before the header list itself.
//
// The returned slice aliases the encoder's internal buffer, which is
// reset (not reallocated) at the start of the next call — callers that
// need the bytes to outlive the next Compress call must copy them.
func (e *Encoder) compress(list HeaderList, pending []int) ([]byte, error) {
	e.buf = e.buf[:0]

	for _, size := range pending {
		e.buf = append(e.buf, encodeInteger(size, 5, flagDynamicSizeUpdate)...)
	}

	for _, h := range list {
		if err := e.encodeHeader(h); err != nil {
			return nil, err
		}
	}

	return e.buf, nil
}

func (e *Encoder) encodeHeader(h Header) error {
	if h.Name == "" {
		return ErrInvalidHeader
	}

	if idx, ok := staticFindFull(h.Name, h.Value); ok {
		e.buf = append(e.buf, encodeInteger(idx, 7, flagIndexed)...)
		return nil
	}
	if idx, ok := e.dynamicTable.FindFull(h.Name, h.Value); ok {
		e.buf = append(e.buf, encodeInteger(staticTableSize+idx, 7, flagIndexed)...)
		return nil
	}

	nameIndex := 0
	if idx, ok := staticFindName(h.Name); ok {
		nameIndex = idx
	} else if idx, ok := e.dynamicTable.FindName(h.Name); ok {
		nameIndex = staticTableSize + idx
	}

	e.buf = append(e.buf, encodeInteger(nameIndex, 6, flagLiteralIncremental)...)
	if nameIndex == 0 {
		e.buf = append(e.buf, e.encodeStringLiteral(h.Name)...)
	}
	e.buf = append(e.buf, e.encodeStringLiteral(h.Value)...)

	e.dynamicTable.Insert(h.Name, h.Value)
	return nil
}

// SetCapacity adjusts the encoder's dynamic table capacity directly,
// without going through the settings/size-update protocol. Used by
// Codec.NotifySettings, which is responsible for queuing the
// corresponding size-update directive.
func (e *Encoder) SetCapacity(newMax int) {
	e.dynamicTable.SetCapacity(newMax)
}
