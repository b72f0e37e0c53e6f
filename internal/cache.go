package internal

import "fmt"
import "sync"
import "hash/fnv"

// Default cache capacity, in bytes.
const DefaultCacheSize = 1*1024*1024 // 1 MiB

// Package level cache for derived atlas pairs. Deriving the weight
// variants of an atlas is cheap, but downsampling sample grids is not,
// and hosts rebuild renderers every time the minimap scale or the
// editor font changes. Keyed by (sample checksum, scale).
var DefaultCache Cache = *NewCache(DefaultCacheSize)

// Checksum hashes raw sample or atlas data for use as a cache key.
func Checksum(data []byte) uint64 {
	hash := fnv.New64a()
	_, _ = hash.Write(data)
	return hash.Sum64()
}

type cachedAtlasEntry struct {
	key [2]uint64
	normal  []byte // read-only
	lighter []byte // read-only
	byteSize uint64
	prev *cachedAtlasEntry // towards most recently used
	next *cachedAtlasEntry // towards least recently used
}

type Cache struct {
	entries map[[2]uint64]*cachedAtlasEntry
	mru *cachedAtlasEntry
	lru *cachedAtlasEntry

	mutex sync.Mutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	const maxCapacity = 256*1024*1024 // 256 MiB

	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > maxCapacity {
		capacity = maxCapacity
		fmt.Print("[minichar.cache] Excessive cache capacity requested, limited to 256MiB\n")
	}
	return &Cache{
		capacity: uint64(capacity),
		entries: make(map[[2]uint64]*cachedAtlasEntry, 8),
	}
}

// Get returns the cached derived pair for the given key, marking the
// entry as most recently used. The returned slices are shared and must
// be treated as read-only.
func (self *Cache) Get(checksum, scale uint64) (normal, lighter []byte, found bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	entry, hit := self.entries[[2]uint64{checksum, scale}]
	if !hit { return nil, nil, false }
	self.touch(entry)
	return entry.normal, entry.lighter, true
}

// Set stores a derived pair under the given key, evicting least
// recently used entries if the capacity is exceeded. Pairs larger than
// the whole capacity are silently not stored.
func (self *Cache) Set(checksum, scale uint64, normal, lighter []byte) {
	byteSize := uint64(len(normal) + len(lighter))
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if byteSize > self.capacity { return }
	key := [2]uint64{checksum, scale}
	if _, alreadyCached := self.entries[key]; alreadyCached { return }

	for self.currentSize + byteSize > self.capacity {
		self.removeOldestEntry()
	}
	entry := &cachedAtlasEntry{
		key: key,
		normal: normal,
		lighter: lighter,
		byteSize: byteSize,
	}
	self.entries[key] = entry
	self.pushFront(entry)
	self.currentSize += byteSize
	if self.currentSize > self.peakSize { self.peakSize = self.currentSize }
}

func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	self.mutex.Lock()
	if bytes == 0 {
		clear(self.entries)
		self.mru, self.lru = nil, nil
		self.currentSize = 0
	} else {
		for self.currentSize > uint64(bytes) {
			self.removeOldestEntry()
		}
	}
	self.capacity = uint64(bytes)
	self.mutex.Unlock()
}

func (self *Cache) Capacity() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return int(self.capacity)
}

func (self *Cache) CurrentSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return int(self.currentSize)
}

func (self *Cache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return int(self.peakSize)
}

func (self *Cache) NumEntries() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// ---- unexported, must be called with the mutex held ----

func (self *Cache) touch(entry *cachedAtlasEntry) {
	if self.mru == entry { return }
	self.unlink(entry)
	self.pushFront(entry)
}

func (self *Cache) pushFront(entry *cachedAtlasEntry) {
	entry.prev = nil
	entry.next = self.mru
	if self.mru != nil { self.mru.prev = entry }
	self.mru = entry
	if self.lru == nil { self.lru = entry }
}

func (self *Cache) unlink(entry *cachedAtlasEntry) {
	if entry.prev != nil { entry.prev.next = entry.next } else { self.mru = entry.next }
	if entry.next != nil { entry.next.prev = entry.prev } else { self.lru = entry.prev }
	entry.prev, entry.next = nil, nil
}

func (self *Cache) removeOldestEntry() {
	oldest := self.lru
	if oldest == nil { panic("broken code") }
	self.unlink(oldest)
	delete(self.entries, oldest.key)
	self.currentSize -= oldest.byteSize
}
