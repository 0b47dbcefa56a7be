package hpack

import "fmt"

// maxIntegerValue bounds decoded HPACK integers per spec.md §4.1: values
// at or above 2^31 are rejected as malformed, guarding against a
// pathological or adversarial encoding running the accumulator past any
// value a header-block field could legitimately need.
const maxIntegerValue = 1 << 31

// maxIntegerContinuationBytes bounds the number of continuation octets
// read for a single integer, so a truncated or adversarial stream
// cannot spin the decoder forever.
const maxIntegerContinuationBytes = 6

// encodeInteger encodes v with an N-bit prefix (N in {4,5,6,7}, or any
// 1..8) and high-bit flags already set in flags (the upper 8-N bits of
// the first octet). See spec.md §4.1.
func encodeInteger(v int, prefixBits int, flags byte) []byte {
	m := (1 << uint(prefixBits)) - 1

	if v < m {
		return []byte{flags | byte(v)}
	}

	out := make([]byte, 0, 4)
	out = append(out, flags|byte(m))
	v -= m
	for v >= 128 {
		out = append(out, byte((v&0x7f)|0x80))
		v >>= 7
	}
	out = append(out, byte(v))
	return out
}

// decodeInteger decodes an HPACK integer with an N-bit prefix at the
// start of buf. It returns the decoded value, the masked (flag) bits of
// the first octet, and the number of bytes consumed.
func decodeInteger(buf []byte, prefixBits int) (value int, flagBits byte, consumed int, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: empty buffer", ErrMalformedInteger)
	}

	m := (1 << uint(prefixBits)) - 1
	n := int(buf[0]) & m
	flagBits = buf[0] &^ byte(m)

	if n < m {
		return n, flagBits, 1, nil
	}

	idx := 1
	shift := uint(0)
	for {
		if idx == len(buf) {
			return 0, 0, 0, fmt.Errorf("%w: truncated continuation", ErrMalformedInteger)
		}
		if idx > maxIntegerContinuationBytes {
			return 0, 0, 0, fmt.Errorf("%w: encoded length too long", ErrMalformedInteger)
		}

		b := buf[idx]
		n += (int(b) & 0x7f) << shift
		idx++

		if b&0x80 == 0 {
			if n >= maxIntegerValue {
				return 0, 0, 0, fmt.Errorf("%w: value %d too large", ErrMalformedInteger, n)
			}
			return n, flagBits, idx, nil
		}
		shift += 7
	}
}
