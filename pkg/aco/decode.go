package aco

import (
	"errors"
	"io"
)

// Decode reads a color table from r until EOF.
func Decode(r io.Reader) ([]ColorEntry, error) {
	d := NewDecoder(DecoderOptions{})
	if _, err := d.ReadFrom(r); err != nil {
		return nil, err
	}
	return d.Finish()
}

// ReadFrom feeds r to the decoder chunk by chunk until EOF. It does not call Finish.
// Reading stops at the first decode failure.
func (d *Decoder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, d.chunkSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if feedErr := d.Feed(buf[:n]); feedErr != nil {
				return total, feedErr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
