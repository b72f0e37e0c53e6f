package core

import "math"

// Glyph cell geometry. Atlases cover the printable ASCII range with one
// fixed-size cell per character code, laid out contiguously in code order.
const (
	FirstCharCode = 32  // ' '
	LastCharCode  = 126 // '~'
	CharCount     = LastCharCode - FirstCharCode + 1

	// Cell size in destination pixels per scale unit.
	BaseCellWidth  = 1
	BaseCellHeight = 2

	// Cell size of high resolution sample grids, per character.
	SampleCellWidth  = 10
	SampleCellHeight = 16
)

// A Color is a plain 8-bit RGBA value. Colors have no identity: two
// colors with the same channels are the same color.
type Color struct {
	R, G, B, A uint8
}

// ColorEmpty is the reserved transparent sentinel found at palette index
// zero.
var ColorEmpty = Color{0, 0, 0, 0}

// ColorID is a dense integer identifier assigned by an external
// tokenization system to a semantic color role. The first few values
// are reserved.
type ColorID int

const (
	ColorIDNone       ColorID = 0 // sentinel, resolves to [ColorEmpty]
	ColorIDForeground ColorID = 1
	ColorIDBackground ColorID = 2
)

// ColorFromFloats converts floating point channels in [0, 1] to an
// 8-bit color. Each channel is scaled to [0, 255] and rounded to the
// nearest integer independently. Values outside [0, 1] are clamped.
func ColorFromFloats(r, g, b, a float64) Color {
	return Color{
		R: floatToUint8(r),
		G: floatToUint8(g),
		B: floatToUint8(b),
		A: floatToUint8(a),
	}
}

func floatToUint8(value float64) uint8 {
	if value <= 0 { return 0 }
	if value >= 1 { return 255 }
	return uint8(math.Round(value*255.0))
}
