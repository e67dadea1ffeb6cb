package aco

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

// ColorEntry is one named swatch of a color table.
type ColorEntry struct {
	// Color is a 6 digit hex color, optionally prefixed with '#'. Decoded entries always use "#rrggbb".
	Color string `json:"color" yaml:"color"`
	// Name defaults to Color when empty on encode.
	Name string `json:"name" yaml:"name"`
}

// RGB parses the entry's color. See HexToRGB.
func (e ColorEntry) RGB() (color.NRGBA, bool) {
	return HexToRGB(e.Color)
}

// label returns the name written for the entry.
func (e ColorEntry) label() string {
	if e.Name == "" {
		return e.Color
	}
	return e.Name
}

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// HexToRGB converts "rrggbb" or "#rrggbb" (any case) to an opaque color.
// It reports false instead of failing when hex does not match the pattern.
func HexToRGB(hex string) (color.NRGBA, bool) {
	match := hexPattern.FindStringSubmatch(hex)
	if match == nil {
		return color.NRGBA{}, false
	}

	var channels [3]uint8
	for i, digits := range match[1:] {
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		channels[i] = uint8(v)
	}

	return color.NRGBA{
		R: channels[0],
		G: channels[1],
		B: channels[2],
		A: 255,
	}, true
}

// RGBToHex formats the red, green and blue channels of c as lowercase "#rrggbb". Alpha is ignored.
func RGBToHex(c color.Color) string {
	if c == nil {
		return ""
	}
	rgb := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}
