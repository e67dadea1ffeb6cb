package aco

import (
	"fmt"
	"io"
	"math"
)

// Encode writes colors as a version 2 color table to w in a single pass.
//
// Entries are written one at a time. If an entry fails validation the bytes already
// written stay in w: ErrInvalidColor for a color that is not 6 hex digits, ErrParse for
// anything else, including write failures.
func Encode(w io.Writer, colors []ColorEntry) error {
	if err := EncodeHeader(w, len(colors)); err != nil {
		return err
	}
	return encodeEntries(w, colors)
}

// EncodeHeader writes the version and count words.
func EncodeHeader(w io.Writer, count int) error {
	if count < 0 || count > math.MaxUint16 {
		return fmt.Errorf("%w: %d colors do not fit the count field", ErrParse, count)
	}

	buf := make([]byte, 0, preamble)
	buf = appendWord(buf, Version2)
	buf = appendWord(buf, uint16(count))

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

func encodeEntries(w io.Writer, colors []ColorEntry) error {
	var buf []byte
	for i, entry := range colors {
		rgb, ok := entry.RGB()
		if !ok {
			return fmt.Errorf("%w: entry %d has color %q", ErrInvalidColor, i, entry.Color)
		}

		units := nameUnits(entry.label())
		if len(units)+1 > math.MaxUint16 {
			return fmt.Errorf("%w: entry %d name is %d code units long", ErrParse, i, len(units))
		}

		buf = buf[:0]
		// colorspace, then w x y z channel words. RGB leaves z unused.
		buf = appendWord(buf, ColorspaceRGB)
		buf = appendChannel(buf, rgb.R)
		buf = appendChannel(buf, rgb.G)
		buf = appendChannel(buf, rgb.B)
		buf = appendWord(buf, 0)
		// reserved word, then the name length counting its terminator
		buf = appendWord(buf, 0)
		buf = appendWord(buf, uint16(len(units)+1))
		for _, unit := range units {
			buf = appendWord(buf, unit)
		}
		buf = appendWord(buf, 0)

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: writing entry %d: %w", ErrParse, i, err)
		}
	}
	return nil
}
