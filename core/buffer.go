package core

import "image"

// A Buffer is a bounds-checked view over a row-major RGBA pixel buffer,
// four bytes per pixel. Renderers write into buffers through [Buffer.SetRGB],
// which encapsulates all the index math; callers own the underlying memory
// and can hand it to a canvas afterwards.
//
// The zero Buffer is not usable; create buffers through [NewBuffer]() or
// [WrapImage]().
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// NewBuffer creates a zeroed buffer of the given size. Non-positive
// dimensions will make the function panic.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 { panic("invalid buffer size") }
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// WrapImage creates a buffer view sharing the pixel memory of the given
// image. Writes through the buffer are visible on the image and vice versa.
//
// The image stride must match its width exactly (no padded rows, no
// sub-images); anything else is a precondition violation and the function
// will panic.
func WrapImage(img *image.RGBA) *Buffer {
	if img == nil { panic("nil image") }
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 { panic("invalid image size") }
	if img.Stride != width*4 { panic("image stride doesn't match image width") }
	return &Buffer{ width: width, height: height, pix: img.Pix }
}

// Width returns the buffer width in pixels.
func (self *Buffer) Width() int { return self.width }

// Height returns the buffer height in pixels.
func (self *Buffer) Height() int { return self.height }

// Pix returns the underlying RGBA pixel data, row-major, four bytes
// per pixel. The slice is shared, not copied.
func (self *Buffer) Pix() []byte { return self.pix }

// Fits reports whether a rectangle of the given size, anchored at its
// top-left corner (x, y), lies fully within the buffer.
func (self *Buffer) Fits(x, y, width, height int) bool {
	if x < 0 || y < 0 { return false }
	return x + width <= self.width && y + height <= self.height
}

// SetRGB writes the color channels of the pixel at (x, y). The alpha
// channel of the pixel is left untouched.
func (self *Buffer) SetRGB(x, y int, r, g, b uint8) {
	index := (y*self.width + x) << 2
	self.pix[index + 0] = r
	self.pix[index + 1] = g
	self.pix[index + 2] = b
}
