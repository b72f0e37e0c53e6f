//go:build cpurender
package minichar

import "image"
import "testing"

func TestUpload(t *testing.T) {
	buffer := newTestBuffer(3, 2, 0)
	pix := buffer.Pix()
	for i := range pix { pix[i] = byte(i*11) }

	canvas := image.NewRGBA(image.Rect(0, 0, 3, 2))
	Upload(canvas, buffer)
	if !equalSlices(canvas.Pix, buffer.Pix()) {
		t.Fatal("uploaded canvas pixels don't match the buffer")
	}
}
