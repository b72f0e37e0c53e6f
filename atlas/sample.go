package atlas

import "image"
import "math"

import "github.com/pixelview/minichar/core"

import "github.com/pkg/errors"
import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

// FromSample downsamples a high resolution sample grid into a render
// atlas at the given scale. The sample grid must hold one
// core.SampleCellWidth x core.SampleCellHeight cell per printable ASCII
// character, same layout as atlas data.
//
// Each destination pixel averages the source rectangle it covers, with
// fractional edge samples weighted by overlap. The result is then
// brightness-normalized so the brightest pixel across all glyphs maps
// to 255; this keeps thin glyph strokes visible at very small cells,
// which a plain box filter would wash out.
func FromSample(sample []byte, scale int) (*Atlas, error) {
	if scale < 1 {
		return nil, errors.Errorf("invalid atlas scale %d (must be >= 1)", scale)
	}
	const sampleCellLen = core.SampleCellWidth*core.SampleCellHeight
	if len(sample) != core.CharCount*sampleCellLen {
		return nil, errors.Errorf(
			"malformed sample data: expected %d bytes, got %d",
			core.CharCount*sampleCellLen, len(sample),
		)
	}

	width, height := cellWidth(scale), cellHeight(scale)
	pixelsPerCell := width*height
	values := make([]float64, core.CharCount*pixelsPerCell)
	brightest := 0.0
	for charIndex := 0; charIndex < core.CharCount; charIndex++ {
		sourceCell := sample[charIndex*sampleCellLen : (charIndex + 1)*sampleCellLen]
		destCell := values[charIndex*pixelsPerCell : (charIndex + 1)*pixelsPerCell]
		cellBrightest := downsampleCell(sourceCell, destCell, width, height)
		if cellBrightest > brightest { brightest = cellBrightest }
	}

	data := make([]byte, len(values))
	if brightest > 0 {
		adjust := 255.0/brightest
		for i, value := range values {
			value *= adjust
			if value > 255 { value = 255 }
			data[i] = uint8(value)
		}
	}
	return &Atlas{ data: data, scale: scale }, nil
}

// Box filter with fractional edge weights. Returns the brightest
// averaged value of the cell.
func downsampleCell(source []byte, dest []float64, width, height int) float64 {
	brightest := 0.0
	for y := 0; y < height; y++ {
		sourceY1 := (float64(y + 0)/float64(height))*core.SampleCellHeight
		sourceY2 := (float64(y + 1)/float64(height))*core.SampleCellHeight
		for x := 0; x < width; x++ {
			sourceX1 := (float64(x + 0)/float64(width))*core.SampleCellWidth
			sourceX2 := (float64(x + 1)/float64(width))*core.SampleCellWidth

			value, weight := 0.0, 0.0
			for sy := int(sourceY1); sy < int(math.Ceil(sourceY2)); sy++ {
				rowWeight := min(float64(sy + 1), sourceY2) - max(float64(sy), sourceY1)
				for sx := int(sourceX1); sx < int(math.Ceil(sourceX2)); sx++ {
					columnWeight := min(float64(sx + 1), sourceX2) - max(float64(sx), sourceX1)
					sampleWeight := rowWeight*columnWeight
					value  += float64(source[sy*core.SampleCellWidth + sx])*sampleWeight
					weight += sampleWeight
				}
			}

			average := value/weight
			dest[y*width + x] = average
			if average > brightest { brightest = average }
		}
	}
	return brightest
}

// Sample rasterizes the printable ASCII range of the given font face
// into a fresh sample grid suitable for [FromSample](). Glyphs that
// exceed the sample cell are clipped; monospaced faces at small sizes
// are the expected input.
//
// A nil face is a precondition violation and will make the function
// panic.
func Sample(face font.Face) []byte {
	if face == nil { panic("nil font face") }

	const sampleCellLen = core.SampleCellWidth*core.SampleCellHeight
	sample := make([]byte, core.CharCount*sampleCellLen)
	cell := image.NewGray(image.Rect(0, 0, core.SampleCellWidth, core.SampleCellHeight))
	ascent := face.Metrics().Ascent.Ceil()
	for charIndex := 0; charIndex < core.CharCount; charIndex++ {
		for i := range cell.Pix { cell.Pix[i] = 0 }
		drawer := font.Drawer{
			Dst: cell,
			Src: image.White,
			Face: face,
			Dot: fixed.P(0, ascent),
		}
		drawer.DrawString(string(rune(core.FirstCharCode + charIndex)))
		copy(sample[charIndex*sampleCellLen : ], cell.Pix)
	}
	return sample
}
