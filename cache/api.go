package cache

import "github.com/pixelview/minichar/internal"

// Default cache size value, in bytes.
const DefaultSize = internal.DefaultCacheSize

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum cache size, in bytes. Derived atlas pairs are tiny
// (a few KiB per scale), so the default is plenty for hosts cycling
// through a handful of scales and fonts. Setting the capacity to zero
// clears the cache; eviction is otherwise automatic with an LRU
// policy.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns the number of bytes taken by the derived atlases currently
// stored in the cache.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns the maximum amount of bytes the cache has held at any point
// of its life. Useful to pick a sensible capacity for your usage.
func GetPeakSize() int {
	return internal.DefaultCache.PeakSize()
}

// Returns the number of derived atlas pairs currently cached.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}
