package hpack

import "fmt"

// Decoder turns HPACK-encoded bytes back into a header list using its
// own dynamic table. A Codec owns exactly one Decoder for its
// lifetime; per HTTP/2 a single decoder instance must live for the
// duration of one connection direction (§5).
type Decoder struct {
	dynamicTable *DynamicTable
}

// NewDecoder creates a decoder with an empty dynamic table of the
// given capacity.
func NewDecoder(maxTableSize int) *Decoder {
	return &Decoder{dynamicTable: NewDynamicTable(maxTableSize)}
}

// SetCapacity adjusts the decoder's dynamic table capacity directly,
// used by Codec.NotifySettings (§4.7), which applies the new cap to
// both directions immediately regardless of wire signaling.
func (d *Decoder) SetCapacity(newMax int) {
	d.dynamicTable.SetCapacity(newMax)
}

// lookup resolves a combined external index (§3) to a name/value pair.
func (d *Decoder) lookup(index int) (string, string, error) {
	if index < 1 {
		return "", "", fmt.Errorf("%w: index 0", ErrIndexOutOfRange)
	}
	if index <= staticTableSize {
		name, value := staticGet(index)
		return name, value, nil
	}
	return d.dynamicTable.Get(index - staticTableSize)
}

// decompress implements §4.5. tracker supplies the bound a size-update
// directive must respect once a SETTINGS value has been negotiated.
func (d *Decoder) decompress(data []byte, tracker *settingsTracker) (HeaderList, error) {
	var result HeaderList
	p := 0
	sizeUpdateAllowed := true // true at start of block, and right after another size-update

	for p < len(data) {
		b := data[p]

		switch {
		case b&flagIndexed != 0:
			index, _, consumed, err := decodeInteger(data[p:], 7)
			if err != nil {
				return nil, err
			}
			if index == 0 {
				return nil, fmt.Errorf("%w: indexed representation with index 0", ErrIndexOutOfRange)
			}
			name, value, err := d.lookup(index)
			if err != nil {
				return nil, err
			}
			result = append(result, Header{Name: name, Value: value})
			p += consumed
			sizeUpdateAllowed = false

		case b&flagLiteralIncremental != 0:
			name, value, consumed, err := d.decodeLiteral(data[p:], 6)
			if err != nil {
				return nil, err
			}
			result = append(result, Header{Name: name, Value: value})
			d.dynamicTable.Insert(name, value)
			p += consumed
			sizeUpdateAllowed = false

		case b&flagDynamicSizeUpdate != 0:
			if !sizeUpdateAllowed {
				return nil, fmt.Errorf("%w: dynamic table size update outside block prefix", ErrDecoding)
			}
			newCapacity, _, consumed, err := decodeInteger(data[p:], 5)
			if err != nil {
				return nil, err
			}
			if err := tracker.checkDecoderResize(newCapacity); err != nil {
				return nil, err
			}
			if !tracker.received {
				tracker.appliedMax = newCapacity
			}
			d.dynamicTable.SetCapacity(newCapacity)
			p += consumed
			// sizeUpdateAllowed stays true: another size-update may follow.

		case b&flagLiteralNeverIndexed != 0:
			name, value, consumed, err := d.decodeLiteral(data[p:], 4)
			if err != nil {
				return nil, err
			}
			result = append(result, Header{Name: name, Value: value})
			p += consumed
			sizeUpdateAllowed = false

		default: // literal without indexing, 0000xxxx
			name, value, consumed, err := d.decodeLiteral(data[p:], 4)
			if err != nil {
				return nil, err
			}
			result = append(result, Header{Name: name, Value: value})
			p += consumed
			sizeUpdateAllowed = false
		}
	}

	return reassembleCookies(result), nil
}

// decodeLiteral decodes the common shape shared by Incremental,
// Without-indexing, and Never-indexed: a name-index integer at the
// given prefix, an optional literal name when the index is 0, and a
// literal value. It does not touch the dynamic table; callers insert
// as their representation requires.
func (d *Decoder) decodeLiteral(buf []byte, prefixBits int) (name, value string, consumed int, err error) {
	nameIndex, _, n, err := decodeInteger(buf, prefixBits)
	if err != nil {
		return "", "", 0, err
	}
	consumed = n

	if nameIndex == 0 {
		name, n, err = decodeString(buf[consumed:])
		if err != nil {
			return "", "", 0, err
		}
		consumed += n
	} else {
		name, _, err = d.lookup(nameIndex)
		if err != nil {
			return "", "", 0, err
		}
	}

	value, n, err = decodeString(buf[consumed:])
	if err != nil {
		return "", "", 0, err
	}
	consumed += n

	return name, value, consumed, nil
}
