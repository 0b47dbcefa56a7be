package hpack

import (
	"go.uber.org/zap"

	"hpackctl/internal/shared/recovery"
)

// DefaultDynamicTableSize is the initial dynamic table capacity for a
// freshly constructed Codec (§6): 4096 bytes.
const DefaultDynamicTableSize = 4096

// Codec is the public entry point described in spec.md §6: a single
// logical component owning one Encoder, one Decoder, and the shared
// settings tracker that ties SETTINGS_HEADER_TABLE_SIZE notifications
// to the size-update directives Compress must emit. A Codec instance
// lives for the duration of one logical HTTP/2 endpoint direction pair
// and must not be used concurrently (§5).
type Codec struct {
	encoder   *Encoder
	decoder   *Decoder
	settings  *settingsTracker
	recoverer *recovery.Recoverer
}

// New creates a fresh Codec: both dynamic tables empty, capacity 4096,
// no SETTINGS value received yet, and no panic recovery wrapping.
func New() *Codec {
	return &Codec{
		encoder:  NewEncoder(DefaultDynamicTableSize),
		decoder:  NewDecoder(DefaultDynamicTableSize),
		settings: newSettingsTracker(DefaultDynamicTableSize),
	}
}

// NewWithRecovery is like New, but wraps Compress and Decompress in a
// recovery.Guard so a bug triggered by malformed wire input surfaces as
// an error instead of a crash. Intended for codecs driven directly by
// untrusted peer input; metrics may be nil.
func NewWithRecovery(logger *zap.Logger, metrics recovery.MetricsCollector) *Codec {
	c := New()
	c.recoverer = recovery.NewRecoverer(logger, metrics)
	return c
}

// SetHuffmanPolicy overrides the encoder's string-encoding policy
// (§4.2); the default matches the source's always-Huffman behavior.
func (c *Codec) SetHuffmanPolicy(p HuffmanPolicy) {
	c.encoder.SetHuffmanPolicy(p)
}

// NotifySettings records a SETTINGS_HEADER_TABLE_SIZE value and
// applies it to both dynamic tables immediately (§4.7). The
// corresponding size-update directive is queued and emitted at the
// start of the next Compress call.
func (c *Codec) NotifySettings(newMax int) error {
	if err := c.settings.notify(newMax); err != nil {
		return err
	}
	c.encoder.SetCapacity(newMax)
	c.decoder.SetCapacity(newMax)
	return nil
}

// Compress encodes list into an HPACK header block (§4.4), preceded by
// any pending dynamic-table-size-update directives queued since the
// last call. The returned slice aliases the encoder's reused output
// buffer (§5) and is only valid until the next call to Compress.
func (c *Codec) Compress(list HeaderList) ([]byte, error) {
	pending := c.settings.drainPending()
	if c.recoverer == nil {
		return c.encoder.compress(list, pending)
	}
	return recovery.Guard(c.recoverer, "hpack.Compress", func() ([]byte, error) {
		return c.encoder.compress(list, pending)
	})
}

// Decompress parses an HPACK header block back into a header list
// (§4.5), applying Cookie reassembly (§4.6) before returning.
func (c *Codec) Decompress(data []byte) (HeaderList, error) {
	if c.recoverer == nil {
		return c.decoder.decompress(data, c.settings)
	}
	return recovery.Guard(c.recoverer, "hpack.Decompress", func() (HeaderList, error) {
		return c.decoder.decompress(data, c.settings)
	})
}

// TableState describes one side's dynamic table occupancy, for
// diagnostic display.
type TableState struct {
	Entries  int
	Size     int
	Capacity int
}

// DecoderTableState reports the decoder's dynamic table occupancy.
func (c *Codec) DecoderTableState() TableState {
	return TableState{
		Entries:  c.decoder.dynamicTable.Len(),
		Size:     c.decoder.dynamicTable.CurrentSize(),
		Capacity: c.decoder.dynamicTable.Capacity(),
	}
}

// EncoderTableState reports the encoder's dynamic table occupancy.
func (c *Codec) EncoderTableState() TableState {
	return TableState{
		Entries:  c.encoder.dynamicTable.Len(),
		Size:     c.encoder.dynamicTable.CurrentSize(),
		Capacity: c.encoder.dynamicTable.Capacity(),
	}
}

// Dispose idempotently releases the encoder's owned output buffer.
// Safe to call more than once; the Codec must not be used afterward.
func (c *Codec) Dispose() {
	if c.encoder != nil {
		c.encoder.buf = nil
	}
}
