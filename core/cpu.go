//go:build cpurender

package core

import "image/draw"

// See documentation on gpu.go instead.
// This is the fallback mode.

type Canvas = draw.Image
