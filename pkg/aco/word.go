package aco

import (
	"encoding/binary"
	"unicode/utf16"
)

// Every field of the format is a big endian 16 bit word.

func readWord(data []byte) uint16 {
	return binary.BigEndian.Uint16(data[:wordSize])
}

func appendWord(buf []byte, value uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, value)
}

// readChannel scales a channel word back to 0-255. The result is fractional; callers truncate.
func readChannel(data []byte) float64 {
	return float64(readWord(data)) / 256
}

// appendChannel writes a 0-255 channel value shifted into the high byte.
func appendChannel(buf []byte, value uint8) []byte {
	return appendWord(buf, uint16(value)*256)
}

// readName decodes n UTF-16 code units.
func readName(data []byte, n int) string {
	units := make([]uint16, n)
	for i := range units {
		units[i] = readWord(data[i*wordSize:])
	}
	return string(utf16.Decode(units))
}

// nameUnits splits a name into the UTF-16 code units written to the file.
func nameUnits(name string) []uint16 {
	return utf16.Encode([]rune(name))
}
