package minichar

import "github.com/pixelview/minichar/core"

// Maps a character code into the supported printable ASCII range,
// wrapping out of range codes with a euclidean modulo so that they
// alias into valid glyphs instead of erroring.
func wrapCharCode(charCode int) int {
	charCode -= core.FirstCharCode
	charCode %= core.CharCount
	if charCode < 0 { charCode += core.CharCount }
	return charCode
}
