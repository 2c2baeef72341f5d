package render

import (
	"math/bits"
	"strconv"

	"twenty48/internal/core"
)

var tilePalette = []core.Color{
	core.RGB8(205, 193, 180), // empty
	core.RGB8(238, 228, 218), // 2
	core.RGB8(237, 224, 200), // 4
	core.RGB8(242, 177, 121), // 8
	core.RGB8(245, 149, 99),  // 16
	core.RGB8(246, 124, 95),  // 32
	core.RGB8(246, 94, 59),   // 64
	core.RGB8(237, 207, 114), // 128
	core.RGB8(237, 204, 97),  // 256
	core.RGB8(237, 200, 80),  // 512
	core.RGB8(237, 197, 63),  // 1024
	core.RGB8(237, 194, 46),  // 2048
}

var (
	darkText  = core.RGB8(119, 110, 101)
	lightText = core.RGB8(249, 246, 242)
)

// TileColor returns the fill of a tile holding value. Non powers of two and
// values past the end of the palette clamp to its last entry.
func TileColor(value int) core.Color {
	idx := tileIndex(value)
	if idx >= len(tilePalette) {
		idx = len(tilePalette) - 1
	}
	return tilePalette[idx]
}

// TextColor returns the label color drawn over TileColor(value).
func TextColor(value int) core.Color {
	if value <= 4 {
		return darkText
	}
	return lightText
}

// tileIndex is log2(value) for powers of two and 0 for empty.
func tileIndex(value int) int {
	if value <= 0 {
		return 0
	}
	if value&(value-1) != 0 {
		return len(tilePalette)
	}
	return bits.TrailingZeros(uint(value))
}

// TileTexture returns the texture key of a tile holding value.
func TileTexture(value int) string {
	return strconv.Itoa(value)
}
