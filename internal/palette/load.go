// Package palette reads palette definitions for the encoder and writes decoded
// entries in the formats the command line tool offers.
//
// Definitions are authored as YAML or JSONC (JSON with comments and trailing commas):
//
//	colors:
//	  - color: "#ff0000"
//	    name: Red
//	  - color: 00ff00
package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"go_aco/pkg/aco"
)

// Definition is the on-disk palette document.
type Definition struct {
	Colors []aco.ColorEntry `json:"colors" yaml:"colors"`
}

// ReadFile loads the palette at path. The format is picked by extension:
// .yaml and .yml are YAML, anything else is JSONC.
func ReadFile(path string) ([]aco.ColorEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var colors []aco.ColorEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		colors, err = ParseYAML(data)
	default:
		colors, err = ParseJSONC(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return colors, nil
}

// ParseYAML decodes a YAML palette definition.
func ParseYAML(data []byte) ([]aco.ColorEntry, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	return definition.Colors, nil
}

// ParseJSONC strips comments and trailing commas from data and decodes it.
func ParseJSONC(data []byte) ([]aco.ColorEntry, error) {
	var definition Definition
	if err := json.Unmarshal(jsonc.ToJSON(data), &definition); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	return definition.Colors, nil
}
