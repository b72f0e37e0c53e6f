package atlas

import "github.com/pixelview/minichar/core"

import "github.com/pkg/errors"

// An Atlas is a single-channel intensity bitmap covering the printable
// ASCII range (codes 32..126), pre-sampled at a fixed integer scale.
// Each character gets one fixed-size cell, cells are laid out
// contiguously in code order and row-major within each cell.
//
// Atlases are immutable once created. How the intensity data gets
// produced is up to the caller; [FromSample]() offers a downsampling
// path from high resolution sample grids, and [Sample]() can produce
// such grids from a font face.
type Atlas struct {
	data  []byte
	scale int
}

// New validates the given raw intensity data and creates an atlas at
// the given scale. The data length must be exactly
// core.CharCount*(core.BaseCellWidth*scale)*(core.BaseCellHeight*scale)
// bytes. The data is copied, the caller can reuse its slice.
func New(data []byte, scale int) (*Atlas, error) {
	if scale < 1 {
		return nil, errors.Errorf("invalid atlas scale %d (must be >= 1)", scale)
	}
	if len(data) == 0 {
		return nil, errors.New("empty atlas data")
	}
	expected := core.CharCount*cellWidth(scale)*cellHeight(scale)
	if len(data) != expected {
		return nil, errors.Errorf(
			"malformed atlas data: scale %d requires %d bytes, got %d",
			scale, expected, len(data),
		)
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Atlas{ data: owned, scale: scale }, nil
}

// Scale returns the atlas scale factor.
func (self *Atlas) Scale() int { return self.scale }

// CellWidth returns the glyph cell width in pixels.
func (self *Atlas) CellWidth() int { return cellWidth(self.scale) }

// CellHeight returns the glyph cell height in pixels.
func (self *Atlas) CellHeight() int { return cellHeight(self.scale) }

// Len returns the total intensity sample count.
func (self *Atlas) Len() int { return len(self.data) }

// Soften returns a derived copy of the atlas data with every sample
// dimmed by the given ratio and clamped to the valid byte range. The
// derivation is pure: same atlas and ratio always yield the same bytes.
func (self *Atlas) Soften(ratio float64) []byte {
	result := make([]byte, len(self.data))
	for i, value := range self.data {
		dimmed := float64(value)*ratio
		if dimmed <   0 { dimmed =   0 }
		if dimmed > 255 { dimmed = 255 }
		result[i] = uint8(dimmed)
	}
	return result
}

func cellWidth(scale int) int  { return core.BaseCellWidth*scale  }
func cellHeight(scale int) int { return core.BaseCellHeight*scale }
