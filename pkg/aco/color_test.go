package aco

import (
	"fmt"
	"image/color"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex   string
		want  color.NRGBA
		valid bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, true},
		{"00FF00", color.NRGBA{G: 255, A: 255}, true},
		{"#0a0B0c", color.NRGBA{R: 10, G: 11, B: 12, A: 255}, true},
		{"zzz", color.NRGBA{}, false},
		{"#fff", color.NRGBA{}, false},
		{"##ff0000", color.NRGBA{}, false},
		{"ff00001", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {

			// when
			got, ok := HexToRGB(tt.hex)

			// then
			if ok != tt.valid || got != tt.want {
				t.Fatal(fmt.Errorf("invalid result for %q: expected %+v %v, actual %+v %v", tt.hex, tt.want, tt.valid, got, ok))
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(color.NRGBA{R: 1, G: 2, B: 255, A: 255}); got != "#0102ff" {
		t.Fatal(fmt.Errorf("expected #0102ff, actual %s", got))
	}
	if got := RGBToHex(nil); got != "" {
		t.Fatal(fmt.Errorf("expected empty string for nil color, actual %q", got))
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b++ {
				want := color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
				got, ok := HexToRGB(RGBToHex(want))
				if !ok || got != want {
					t.Fatal(fmt.Errorf("round trip failed: expected %+v, actual %+v", want, got))
				}
			}
		}
	}
}

func TestHexNormalizes(t *testing.T) {
	rgb, ok := HexToRGB("ABCDEF")
	if !ok {
		t.Fatal("expected ABCDEF to parse")
	}
	if got := RGBToHex(rgb); got != "#abcdef" {
		t.Fatal(fmt.Errorf("expected #abcdef, actual %s", got))
	}
}
