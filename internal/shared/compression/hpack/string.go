package hpack

import "fmt"

const stringHuffmanFlag byte = 0x80

// encodeString encodes str per §4.2: a 1-bit Huffman flag, a 7-bit
// prefix length integer, then the (possibly Huffman-compressed)
// octets. huffman forces the Huffman form regardless of whether it is
// shorter, matching the source's always-Huffman default policy (§4.2);
// the string codec is otherwise free to pick the shorter form.
func encodeString(str string, huffman bool) []byte {
	raw := []byte(str)

	if huffman {
		compressed := HuffmanEncode(raw)
		out := encodeInteger(len(compressed), 7, stringHuffmanFlag)
		return append(out, compressed...)
	}

	out := encodeInteger(len(raw), 7, 0)
	return append(out, raw...)
}

// encodeStringShortest picks whichever of the Huffman or literal forms
// is smaller, the "smarter" policy §4.2 permits implementations to use.
func encodeStringShortest(str string) []byte {
	raw := []byte(str)
	if HuffmanEncodedLen(raw) < len(raw) {
		return encodeString(str, true)
	}
	return encodeString(str, false)
}

// decodeString decodes a string literal at the start of buf, returning
// the decoded value and the number of bytes consumed.
func decodeString(buf []byte) (string, int, error) {
	length, flags, consumed, err := decodeInteger(buf, 7)
	if err != nil {
		return "", 0, err
	}

	rest := buf[consumed:]
	if length > len(rest) {
		return "", 0, fmt.Errorf("%w: string length %d exceeds remaining %d bytes", ErrMalformedString, length, len(rest))
	}

	raw := rest[:length]
	total := consumed + length

	if flags&stringHuffmanFlag != 0 {
		decoded, err := HuffmanDecode(raw)
		if err != nil {
			return "", 0, err
		}
		return string(decoded), total, nil
	}

	return string(raw), total, nil
}
