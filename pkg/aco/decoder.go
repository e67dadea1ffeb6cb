package aco

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
)

// State is the position of a Decoder in the stream.
type State int

const (
	AwaitingVersion State = iota
	AwaitingCount
	ParsingEntries
	Finalized
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingVersion:
		return "awaiting-version"
	case AwaitingCount:
		return "awaiting-count"
	case ParsingEntries:
		return "parsing-entries"
	case Finalized:
		return "finalized"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// DefaultChunkSize is the read size used by ReadFrom when DecoderOptions.ChunkSize is zero.
const DefaultChunkSize = 4096

// DecoderOptions configures a Decoder. The zero value is usable.
type DecoderOptions struct {
	// Observer receives skipped-entry diagnostics. Defaults to LogObserver(slog.Default()).
	Observer Observer
	// ChunkSize is the read size used by ReadFrom.
	ChunkSize int
}

// Decoder reconstructs a color table from chunks of arbitrary size and boundary.
//
// Chunks are passed to Feed in arrival order; bytes that do not yet form a complete
// field are kept and retried with the next chunk. Finish ends the stream and returns
// the resolved entries. A Decoder is not safe for concurrent use.
type Decoder struct {
	observer  Observer
	chunkSize int

	state State
	err   error

	// buf holds the received bytes from offset onward that have not been consumed.
	buf    []byte
	offset int64

	version uint16
	// tailDecided is set once a version 1 stream is known to carry, or not carry, a version 2 tail.
	tailDecided bool

	slots    []ColorEntry
	resolved []bool
	// next is the first slot that is neither resolved nor skipped.
	next int
}

// NewDecoder returns a Decoder awaiting the version word.
func NewDecoder(opts DecoderOptions) *Decoder {
	observer := opts.Observer
	if observer == nil {
		observer = LogObserver(slog.Default())
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Decoder{
		observer:  observer,
		chunkSize: chunkSize,
	}
}

// State returns the current parse state.
func (d *Decoder) State() State {
	return d.state
}

// Offset returns the number of stream bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Buffered returns the number of received bytes waiting for more input.
func (d *Decoder) Buffered() int {
	return len(d.buf)
}

// Feed appends chunk to the stream and parses as far as the available bytes allow.
// The only error is ErrParse, for an unsupported version word or a stream that already
// ended; after a version failure the decoder stays Failed.
func (d *Decoder) Feed(chunk []byte) error {
	switch d.state {
	case Failed:
		return d.err
	case Finalized:
		return fmt.Errorf("%w: feed after finish", ErrParse)
	}

	d.buf = append(d.buf, chunk...)

	if d.state == AwaitingVersion {
		if len(d.buf) < wordSize {
			return nil
		}
		version := readWord(d.buf)
		if version != Version1 && version != Version2 {
			return d.fail(fmt.Errorf("%w: unsupported version %d", ErrParse, version))
		}
		d.version = version
		d.consume(wordSize)
		d.state = AwaitingCount
	}

	if d.state == AwaitingCount {
		if len(d.buf) < wordSize {
			return nil
		}
		count := int(readWord(d.buf))
		d.consume(wordSize)
		d.slots = make([]ColorEntry, count)
		d.resolved = make([]bool, count)
		d.state = ParsingEntries
	}

	if d.version == Version1 && !d.tailDecided && !d.detectTail() {
		return nil
	}

	d.parseEntries()
	return nil
}

// Finish ends the stream and returns the resolved entries in table order.
// Entries that were skipped or never fully received are left out.
// It fails with ErrParse if the version word was never read or was invalid.
func (d *Decoder) Finish() ([]ColorEntry, error) {
	switch d.state {
	case Failed:
		return nil, d.err
	case Finalized:
		return nil, fmt.Errorf("%w: finish called twice", ErrParse)
	case AwaitingVersion:
		return nil, d.fail(fmt.Errorf("%w: stream ended before the version word", ErrParse))
	}

	// A version 1 stream too short to show a tail is read as plain version 1.
	// One that ends inside the tail's preamble keeps nothing: its version 1 entries
	// are superseded and no version 2 entry arrived.
	if d.state == ParsingEntries && d.version == Version1 && !d.tailDecided {
		d.tailDecided = true
		if d.tailStarted() {
			d.consume(len(d.buf))
			d.version = Version2
		} else {
			d.parseEntries()
		}
	}

	colors := make([]ColorEntry, 0, len(d.slots))
	for i, entry := range d.slots {
		if d.resolved[i] {
			colors = append(colors, entry)
		}
	}

	d.state = Finalized
	d.buf = nil
	d.slots = nil
	d.resolved = nil
	return colors, nil
}

func (d *Decoder) fail(err error) error {
	d.state = Failed
	d.err = err
	d.buf = nil
	d.slots = nil
	d.resolved = nil
	return err
}

func (d *Decoder) consume(n int) {
	d.buf = d.buf[n:]
	d.offset += int64(n)
}

// detectTail reports whether the version 1 tail decision could be made.
//
// Photoshop writes a version 1 table followed by a version 2 copy with names. When the
// word right after the version 1 entries is 2, the version 1 entries and the version 2
// preamble are dropped and parsing continues in version 2 with the same count.
// Entries are held back until this decision is made so the result does not depend on
// where chunks are split.
func (d *Decoder) detectTail() bool {
	count := len(d.slots)
	if count == 0 {
		d.tailDecided = true
		return true
	}

	block := count * headerV1
	if len(d.buf) < block+wordSize {
		return false
	}
	if !d.tailStarted() {
		d.tailDecided = true
		return true
	}
	// The tail's count word is skipped, so it has to arrive first.
	if len(d.buf) < block+preamble {
		return false
	}

	d.tailDecided = true
	d.consume(block + preamble)
	d.version = Version2
	return true
}

// tailStarted reports whether the word after the version 1 entries is buffered and equals 2.
func (d *Decoder) tailStarted() bool {
	block := len(d.slots) * headerV1
	return len(d.buf) >= block+wordSize && readWord(d.buf[block:]) == Version2
}

// parseEntries resolves slots in order until one cannot be completed from d.buf.
func (d *Decoder) parseEntries() {
	width := headerLen(d.version)

	for d.next < len(d.slots) {
		if len(d.buf) < width {
			return
		}
		header := d.buf[:width]

		size := width
		name := ""
		if d.version == Version2 {
			// The length counts a terminator that is not part of the name.
			units := int(readWord(header[width-wordSize:])) - 1
			if units >= 0 {
				size += (units + 1) * wordSize
			}
			if len(d.buf) < size {
				return
			}
			if units > 0 {
				name = readName(d.buf[width:], units)
			}
		}

		index := d.next
		if colorspace := readWord(header); colorspace != ColorspaceRGB {
			d.observer.ColorSkipped(SkipEvent{Index: index, Colorspace: colorspace})
		} else {
			d.slots[index] = ColorEntry{
				Color: RGBToHex(color.NRGBA{
					R: uint8(math.Floor(readChannel(header[2:]))),
					G: uint8(math.Floor(readChannel(header[4:]))),
					B: uint8(math.Floor(readChannel(header[6:]))),
					A: 255,
				}),
				Name: name,
			}
			d.resolved[index] = true
		}

		d.consume(size)
		d.next++
	}
}
