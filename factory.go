package minichar

import "github.com/pixelview/minichar/atlas"
import "github.com/pixelview/minichar/internal"

// CreateFromSample builds a renderer at the given scale from a high
// resolution sample grid (see [atlas.FromSample]() for the layout),
// reusing previously derived atlases from the package cache when the
// same sample data and scale have been seen before.
func CreateFromSample(sample []byte, scale int) (*Renderer, error) {
	checksum := internal.Checksum(sample)
	normal, lighter, found := internal.DefaultCache.Get(checksum, uint64(scale))
	if found {
		return newRendererDerived(normal, lighter, scale), nil
	}

	source, err := atlas.FromSample(sample, scale)
	if err != nil { return nil, err }
	renderer := NewRendererFromAtlas(source)
	internal.DefaultCache.Set(checksum, uint64(scale), renderer.normal, renderer.lighter)
	return renderer, nil
}
