//go:build !cpurender

package core

import "github.com/hajimehoshi/ebiten/v2"

// A Canvas is the display surface that rendered buffers are uploaded to.
// Buffers themselves stay plain CPU memory; the canvas only comes into
// play at upload time.
//
// Without Ebitengine (-tags cpurender), [Canvas] defaults to
// [image/draw.Image].
type Canvas = *ebiten.Image
