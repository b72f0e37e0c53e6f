//go:build !cpurender

package minichar

import "github.com/pixelview/minichar/core"

// Upload copies a rendered buffer onto the given canvas. The canvas
// size must match the buffer size exactly; anything else is a
// precondition violation and will make the function panic.
func Upload(canvas core.Canvas, buffer *core.Buffer) {
	if canvas == nil { panic("nil canvas") }
	bounds := canvas.Bounds()
	if bounds.Dx() != buffer.Width() || bounds.Dy() != buffer.Height() {
		panic("canvas size doesn't match buffer size")
	}
	canvas.WritePixels(buffer.Pix())
}
