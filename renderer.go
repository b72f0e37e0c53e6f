package minichar

import "fmt"

import "github.com/pixelview/minichar/atlas"
import "github.com/pixelview/minichar/core"

// Softening ratios for the two derived atlas weights. The values are
// calibrated for minimap-sized cells; changing them changes the
// rendering contrast.
const (
	softenRatioNormal  = 12.0/15.0
	softenRatioLighter = 50.0/60.0
)

// The [Renderer] rasterizes single glyph cells into caller-supplied
// pixel buffers, alpha-blending each pixel between a foreground and a
// background color based on pre-sampled atlas intensities.
//
// Renderers hold two derived atlases (normal and lighter weight) fixed
// at construction and retain no other state: both render operations
// are pure transformations of their inputs into buffer mutations, and
// repeated calls with identical arguments are idempotent.
type Renderer struct {
	normal  []byte
	lighter []byte
	scale int
	cellWidth int
	cellHeight int
	notify func(notice string)
}

// NewRenderer validates the given raw single-channel atlas data and
// creates a renderer for it, deriving the normal and lighter weight
// variants by uniform softening. See [atlas.New]() for the expected
// data layout.
func NewRenderer(data []byte, scale int) (*Renderer, error) {
	source, err := atlas.New(data, scale)
	if err != nil { return nil, err }
	return NewRendererFromAtlas(source), nil
}

// NewRendererFromAtlas creates a renderer from an already validated
// atlas. A nil atlas is a precondition violation and will make the
// function panic.
func NewRendererFromAtlas(source *atlas.Atlas) *Renderer {
	if source == nil { panic("nil atlas") }
	return newRendererDerived(
		source.Soften(softenRatioNormal),
		source.Soften(softenRatioLighter),
		source.Scale(),
	)
}

func newRendererDerived(normal, lighter []byte, scale int) *Renderer {
	return &Renderer{
		normal: normal,
		lighter: lighter,
		scale: scale,
		cellWidth: core.BaseCellWidth*scale,
		cellHeight: core.BaseCellHeight*scale,
		notify: defaultNotify,
	}
}

func defaultNotify(notice string) {
	fmt.Print("[minichar] " + notice + "\n")
}

// Scale returns the renderer's integer scale factor.
func (self *Renderer) Scale() int { return self.scale }

// CellWidth returns the glyph cell width in destination pixels.
func (self *Renderer) CellWidth() int { return self.cellWidth }

// CellHeight returns the glyph cell height in destination pixels.
func (self *Renderer) CellHeight() int { return self.cellHeight }

// SetNotifyFunc replaces the diagnostic hook invoked on rejected
// render requests. The default prints a prefixed notice. A nil
// function is a precondition violation and will make the method panic.
func (self *Renderer) SetNotifyFunc(fn func(notice string)) {
	if fn == nil { panic("nil notify func") }
	self.notify = fn
}

// RenderChar rasterizes the glyph cell for the given character code
// into the buffer at top-left device coordinates (dx, dy). Each pixel
// linearly interpolates R, G and B between backgroundColor and clr by
// the normalized atlas intensity; destination alpha is left untouched.
//
// Character codes outside the printable ASCII range (32..126) alias
// deterministically into it by modulo wrap. Requests whose scaled cell
// doesn't fit inside the buffer write nothing and report a non-fatal
// diagnostic through the notify hook: such calls signal a bug in the
// layout layer, not a runtime condition worth failing over.
func (self *Renderer) RenderChar(buffer *core.Buffer, dx, dy int, charCode int, clr, backgroundColor core.Color, useLighterFont bool) {
	if !buffer.Fits(dx, dy, self.cellWidth, self.cellHeight) {
		self.notify(fmt.Sprintf("RenderChar request outside buffer bounds at (%d, %d), skipping draw", dx, dy))
		return
	}

	data := self.normal
	if useLighterFont { data = self.lighter }
	offset := wrapCharCode(charCode)*self.cellWidth*self.cellHeight

	backgroundR := float64(backgroundColor.R)
	backgroundG := float64(backgroundColor.G)
	backgroundB := float64(backgroundColor.B)
	deltaR := float64(clr.R) - backgroundR
	deltaG := float64(clr.G) - backgroundG
	deltaB := float64(clr.B) - backgroundB
	for y := 0; y < self.cellHeight; y++ {
		for x := 0; x < self.cellWidth; x++ {
			c := float64(data[offset])/255.0
			offset += 1
			buffer.SetRGB(dx + x, dy + y,
				uint8(backgroundR + deltaR*c + 0.5),
				uint8(backgroundG + deltaG*c + 0.5),
				uint8(backgroundB + deltaB*c + 0.5),
			)
		}
	}
}

// BlockRenderChar fills the glyph cell footprint at (dx, dy) with a
// single flat color, the 50% midpoint blend between backgroundColor
// and clr. This is the cheap placeholder path for scales too small for
// recognizable glyph shapes. Bounds and coordinate contracts match
// [Renderer.RenderChar](); useLighterFont is accepted for call-site
// symmetry but doesn't affect the output.
func (self *Renderer) BlockRenderChar(buffer *core.Buffer, dx, dy int, clr, backgroundColor core.Color, useLighterFont bool) {
	if !buffer.Fits(dx, dy, self.cellWidth, self.cellHeight) {
		self.notify(fmt.Sprintf("BlockRenderChar request outside buffer bounds at (%d, %d), skipping draw", dx, dy))
		return
	}

	r := uint8(float64(backgroundColor.R) + (float64(clr.R) - float64(backgroundColor.R))*0.5 + 0.5)
	g := uint8(float64(backgroundColor.G) + (float64(clr.G) - float64(backgroundColor.G))*0.5 + 0.5)
	b := uint8(float64(backgroundColor.B) + (float64(clr.B) - float64(backgroundColor.B))*0.5 + 0.5)
	for y := 0; y < self.cellHeight; y++ {
		for x := 0; x < self.cellWidth; x++ {
			buffer.SetRGB(dx + x, dy + y, r, g, b)
		}
	}
}
