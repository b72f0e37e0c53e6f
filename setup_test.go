package minichar

// This file provides shared helpers for the package tests: deterministic
// test atlases and buffer comparison utilities.

import "github.com/pixelview/minichar/core"

// Returns valid atlas data where every glyph cell has a distinct,
// deterministic intensity pattern.
func testAtlasData(scale int) []byte {
	cellLen := core.BaseCellWidth*scale*core.BaseCellHeight*scale
	data := make([]byte, core.CharCount*cellLen)
	for charIndex := 0; charIndex < core.CharCount; charIndex++ {
		for pixel := 0; pixel < cellLen; pixel++ {
			data[charIndex*cellLen + pixel] = byte((charIndex*41 + pixel*13) % 256)
		}
	}
	return data
}

// Returns a buffer with every byte (alpha included) set to fill.
func newTestBuffer(width, height int, fill byte) *core.Buffer {
	buffer := core.NewBuffer(width, height)
	pix := buffer.Pix()
	for i := range pix { pix[i] = fill }
	return buffer
}

func equalSlices(a, b []byte) bool {
	if len(a) != len(b) { return false }
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] { return false }
	}
	return true
}

func snapshot(buffer *core.Buffer) []byte {
	pix := buffer.Pix()
	clone := make([]byte, len(pix))
	copy(clone, pix)
	return clone
}
