package internal

import "testing"

func TestCacheSetGet(t *testing.T) {
	cache := NewCache(1024)
	normal, lighter := []byte{1, 2}, []byte{3, 4}
	cache.Set(11, 1, normal, lighter)

	gotNormal, gotLighter, found := cache.Get(11, 1)
	if !found { t.Fatal("expected cache hit") }
	if &gotNormal[0] != &normal[0] || &gotLighter[0] != &lighter[0] {
		t.Fatal("cache must return the stored slices")
	}
	if _, _, found := cache.Get(11, 2); found {
		t.Fatal("different scales must use different entries")
	}
	if cache.NumEntries() != 1 || cache.CurrentSize() != 4 {
		t.Fatalf("unexpected cache stats: %d entries, %d bytes", cache.NumEntries(), cache.CurrentSize())
	}
}

func TestCacheEviction(t *testing.T) {
	cache := NewCache(8)
	cache.Set(1, 1, []byte{1, 2}, []byte{3, 4}) // 4 bytes
	cache.Set(2, 1, []byte{1, 2}, []byte{3, 4}) // 8 bytes total
	cache.Get(1, 1)                             // make key 1 most recently used
	cache.Set(3, 1, []byte{1, 2}, []byte{3, 4}) // evicts key 2

	if _, _, found := cache.Get(1, 1); !found {
		t.Fatal("recently used entry must survive eviction")
	}
	if _, _, found := cache.Get(2, 1); found {
		t.Fatal("least recently used entry must be evicted")
	}
	if _, _, found := cache.Get(3, 1); !found {
		t.Fatal("newly stored entry must be present")
	}
	if cache.PeakSize() != 8 {
		t.Fatalf("unexpected peak size %d", cache.PeakSize())
	}
}

func TestCacheOversizedPair(t *testing.T) {
	cache := NewCache(4)
	cache.Set(1, 1, make([]byte, 8), make([]byte, 8))
	if cache.NumEntries() != 0 {
		t.Fatal("pairs larger than the capacity must not be stored")
	}
}

func TestCacheSetCapacityZeroClears(t *testing.T) {
	cache := NewCache(1024)
	cache.Set(1, 1, []byte{1}, []byte{2})
	cache.SetCapacity(0)
	if cache.NumEntries() != 0 || cache.CurrentSize() != 0 {
		t.Fatal("setting capacity to zero must clear the cache")
	}
	if _, _, found := cache.Get(1, 1); found {
		t.Fatal("cleared entries must not be retrievable")
	}
}

func TestChecksum(t *testing.T) {
	if Checksum([]byte{1, 2, 3}) != Checksum([]byte{1, 2, 3}) {
		t.Fatal("checksums must be deterministic")
	}
	if Checksum([]byte{1, 2, 3}) == Checksum([]byte{1, 2, 4}) {
		t.Fatal("different data should produce different checksums")
	}
}
