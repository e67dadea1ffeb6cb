package aco

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestEncode(t *testing.T) {

	// given
	colors := []ColorEntry{{Color: "#ff0000", Name: "Red"}}
	var buf bytes.Buffer

	// when
	err := Encode(&buf, colors)
	if err != nil {
		t.Fatal(err)
	}

	// then
	want := []byte{
		0, 2, // version
		0, 1, // count
		0, 0, // colorspace
		0xff, 0, // R
		0, 0, // G
		0, 0, // B
		0, 0, // pad
		0, 0, // reserved
		0, 4, // name length + 1
		0, 'R', 0, 'e', 0, 'd',
		0, 0, // terminator
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatal(fmt.Errorf("invalid bytes: expected %v, actual %v", want, buf.Bytes()))
	}
}

func TestEncodeDefaultsNameToColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []ColorEntry{{Color: "00ff00"}}); err != nil {
		t.Fatal(err)
	}

	colors, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 1 || colors[0].Name != "00ff00" || colors[0].Color != "#00ff00" {
		t.Fatal(fmt.Errorf("invalid entries decoded: %+v", colors))
	}
}

func TestEncodeUTF16Name(t *testing.T) {
	var buf bytes.Buffer
	name := "Grün 🎨"
	if err := Encode(&buf, []ColorEntry{{Color: "#123456", Name: name}}); err != nil {
		t.Fatal(err)
	}

	// the emoji is a surrogate pair, so 7 code units plus the terminator
	if got := readWord(buf.Bytes()[preamble+headerV2-wordSize:]); got != 8 {
		t.Fatal(fmt.Errorf("expected name length word 8, actual %d", got))
	}

	colors, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if colors[0].Name != name {
		t.Fatal(fmt.Errorf("expected name %q, actual %q", name, colors[0].Name))
	}
}

func TestEncodeInvalidColor(t *testing.T) {

	// given
	colors := []ColorEntry{
		{Color: "#ffffff", Name: "White"},
		{Color: "zzz", Name: "Broken"},
	}
	var buf bytes.Buffer

	// when
	err := Encode(&buf, colors)

	// then
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatal(fmt.Errorf("expected %v, actual %v", ErrInvalidColor, err))
	}
	// the preamble and the first entry are not rolled back
	if want := preamble + headerV2 + 5*wordSize + wordSize; buf.Len() != want {
		t.Fatal(fmt.Errorf("expected %d bytes left in the sink, actual %d", want, buf.Len()))
	}
}

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errors.New("sink closed")
	}
	w.remaining--
	return len(p), nil
}

func TestEncodeWriteFailure(t *testing.T) {
	tests := []struct {
		name   string
		writes int
	}{
		{"header", 0},
		{"entry", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(&failingWriter{remaining: tt.writes}, []ColorEntry{{Color: "#000000"}})
			if !errors.Is(err, ErrParse) {
				t.Fatal(fmt.Errorf("expected %v, actual %v", ErrParse, err))
			}
		})
	}
}

func TestEncodeTooManyColors(t *testing.T) {
	colors := make([]ColorEntry, 1<<16)
	var buf bytes.Buffer
	if err := Encode(&buf, colors); !errors.Is(err, ErrParse) {
		t.Fatal(fmt.Errorf("expected %v, actual %v", ErrParse, err))
	}
	if buf.Len() != 0 {
		t.Fatal(fmt.Errorf("expected nothing written, actual %d bytes", buf.Len()))
	}
}

func TestChannelScaling(t *testing.T) {
	buf := appendChannel(nil, 0xab)
	if got := readWord(buf); got != 0xab00 {
		t.Fatal(fmt.Errorf("expected 0xab00, actual %#x", got))
	}
	if got := readChannel([]byte{0x12, 0x80}); got != 18.5 {
		t.Fatal(fmt.Errorf("expected 18.5, actual %v", got))
	}
}

func TestDecodeLoneSurrogateName(t *testing.T) {

	// given
	data := appendWord(nil, Version2)
	data = appendWord(data, 1)
	data = append(data, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	data = appendWord(data, 3)
	data = appendWord(data, 'A')
	data = appendWord(data, 0xd800)
	data = appendWord(data, 0)

	// when
	colors, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// then
	if colors[0].Name != "A\ufffd" {
		t.Fatal(fmt.Errorf("expected the unpaired surrogate to become U+FFFD, actual %q", colors[0].Name))
	}
}
