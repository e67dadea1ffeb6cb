package aco

import (
	"errors"
)

// The format versions understood by the decoder. The encoder always writes Version2.
const (
	Version1 = uint16(1)
	Version2 = uint16(2)
)

// ColorspaceRGB is the only colorspace word the decoder turns into entries.
const ColorspaceRGB = uint16(0)

// Extension is the file suffix enforced for written palettes.
const Extension = ".aco"

const (
	// wordSize is the width of every field in the file.
	wordSize = 2
	// headerV1 is colorspace + 4 channel words.
	headerV1 = 10
	// headerV2 adds the reserved word and the name length word.
	headerV2 = 14
	// preamble is the version word plus the count word.
	preamble = 4
)

var (
	// ErrParse is reported for a malformed version field or any failure while serializing.
	// Its message is exactly "Parse Error".
	ErrParse = errors.New("Parse Error")
	// ErrInvalidColor is reported when an entry's color does not yield three channels.
	// Its message is exactly "Invalid Color".
	ErrInvalidColor = errors.New("Invalid Color")
)

// headerLen returns the fixed width of one entry for the given version.
func headerLen(version uint16) int {
	if version == Version2 {
		return headerV2
	}
	return headerV1
}
