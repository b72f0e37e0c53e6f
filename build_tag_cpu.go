//go:build cpurender

package minichar

import "image/color"

import "github.com/pixelview/minichar/core"

// Upload copies a rendered buffer onto the given canvas. The canvas
// size must match the buffer size exactly; anything else is a
// precondition violation and will make the function panic.
//
// This is the fallback version used without Ebitengine.
func Upload(canvas core.Canvas, buffer *core.Buffer) {
	if canvas == nil { panic("nil canvas") }
	bounds := canvas.Bounds()
	if bounds.Dx() != buffer.Width() || bounds.Dy() != buffer.Height() {
		panic("canvas size doesn't match buffer size")
	}

	pix := buffer.Pix()
	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			canvas.Set(x, y, color.RGBA{
				R: pix[index + 0],
				G: pix[index + 1],
				B: pix[index + 2],
				A: pix[index + 3],
			})
			index += 4
		}
	}
}
