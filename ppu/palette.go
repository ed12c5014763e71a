package ppu

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
)

//go:embed palette.json
var paletteJSON []byte

// masterPalette maps a 6-bit palette memory value to the colour the chip emits.
var masterPalette = loadPalette(paletteJSON)

func loadPalette(data []byte) [64]color.RGBA {
	var result [][3]uint8
	if err := json.Unmarshal(data, &result); err != nil {
		panic(fmt.Errorf("ppu: decoding master palette: %w", err))
	}
	if len(result) != 64 {
		panic(fmt.Errorf("ppu: master palette has %d entries, want 64", len(result)))
	}

	var palette [64]color.RGBA
	for i := range result {
		palette[i] = color.RGBA{R: result[i][0], G: result[i][1], B: result[i][2], A: 0xFF}
	}
	return palette
}

// MasterColor returns the colour for a palette memory value. Only the low six
// bits are significant.
func MasterColor(index uint8) color.RGBA {
	return masterPalette[index&0x3F]
}
