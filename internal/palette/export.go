package palette

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"go_aco/pkg/aco"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported export encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR}

// cborMode uses Core Deterministic Encoding so equal palettes produce identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("palette: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", name, Formats)
}

// Export writes colors to w as a Definition document.
func Export(w io.Writer, format Format, colors []aco.ColorEntry) error {
	definition := Definition{Colors: colors}
	if definition.Colors == nil {
		definition.Colors = []aco.ColorEntry{}
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(definition)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(definition); err != nil {
			return err
		}
		return encoder.Close()
	case FormatCBOR:
		return cborMode.NewEncoder(w).Encode(definition)
	}
	return fmt.Errorf("unknown format %q", format)
}
