package atlas

import "testing"

import "github.com/pixelview/minichar/core"

import "golang.org/x/image/font/basicfont"

func validData(scale int) []byte {
	cellLen := core.BaseCellWidth*scale*core.BaseCellHeight*scale
	data := make([]byte, core.CharCount*cellLen)
	for i := range data { data[i] = byte(i % 256) }
	return data
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, 1); err == nil {
		t.Fatal("expected error for empty data")
	}
	if _, err := New(validData(1), 0); err == nil {
		t.Fatal("expected error for scale 0")
	}
	if _, err := New(validData(1), 2); err == nil {
		t.Fatal("expected error for data/scale length mismatch")
	}
	source, err := New(validData(2), 2)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if source.CellWidth() != 2 || source.CellHeight() != 4 {
		t.Fatalf("unexpected cell size %dx%d", source.CellWidth(), source.CellHeight())
	}
	if source.Len() != core.CharCount*8 {
		t.Fatalf("unexpected atlas length %d", source.Len())
	}
}

func TestNewCopiesData(t *testing.T) {
	data := validData(1)
	source, err := New(data, 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	beforeMutation := source.Soften(1.0)
	data[0] = ^data[0]
	afterMutation := source.Soften(1.0)
	if beforeMutation[0] != afterMutation[0] {
		t.Fatal("atlas must not share memory with the caller's slice")
	}
}

func TestSoften(t *testing.T) {
	source, err := New(validData(1), 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	raw := source.Soften(1.0)
	dimmed := source.Soften(12.0/15.0)
	dimmedAgain := source.Soften(12.0/15.0)
	for i := range dimmed {
		if dimmed[i] > raw[i] {
			t.Fatalf("softening must be non-increasing per sample (byte %d: %d > %d)", i, dimmed[i], raw[i])
		}
		if dimmed[i] != dimmedAgain[i] {
			t.Fatal("softening must be deterministic")
		}
	}
	if dimmed[150] != 120 { // sample value 150 dims to 150*12/15 = 120
		t.Fatalf("expected 150*12/15 = 120, got %d", dimmed[150])
	}
	if raw[0] != 0 || dimmed[0] != 0 {
		t.Fatal("zero samples must stay zero")
	}
}

func TestSoftenClamps(t *testing.T) {
	source, err := New(validData(1), 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	raw := source.Soften(1.0)
	boosted := source.Soften(400.0)
	for i, value := range boosted {
		if raw[i] != 0 && value != 255 {
			t.Fatalf("expected clamping to 255 at byte %d, got %d", i, value)
		}
	}
}

func TestFromSampleValidation(t *testing.T) {
	if _, err := FromSample(make([]byte, 10), 1); err == nil {
		t.Fatal("expected error for malformed sample length")
	}
	sampleLen := core.CharCount*core.SampleCellWidth*core.SampleCellHeight
	if _, err := FromSample(make([]byte, sampleLen), 0); err == nil {
		t.Fatal("expected error for scale 0")
	}
}

func TestFromSampleUniform(t *testing.T) {
	sampleLen := core.CharCount*core.SampleCellWidth*core.SampleCellHeight
	sample := make([]byte, sampleLen)
	for i := range sample { sample[i] = 128 }

	source, err := FromSample(sample, 2)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	// uniform input normalizes to full intensity everywhere
	full := source.Soften(1.0)
	for i, value := range full {
		if value != 255 {
			t.Fatalf("expected brightness-normalized 255 at byte %d, got %d", i, value)
		}
	}
}

func TestFromSampleEmpty(t *testing.T) {
	sampleLen := core.CharCount*core.SampleCellWidth*core.SampleCellHeight
	source, err := FromSample(make([]byte, sampleLen), 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	for i, value := range source.Soften(1.0) {
		if value != 0 {
			t.Fatalf("all-dark samples must downsample to an all-dark atlas (byte %d = %d)", i, value)
		}
	}
}

func TestFromSampleDeterministic(t *testing.T) {
	sampleLen := core.CharCount*core.SampleCellWidth*core.SampleCellHeight
	sample := make([]byte, sampleLen)
	for i := range sample { sample[i] = byte((i*7) % 256) }

	sourceA, err := FromSample(sample, 3)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	sourceB, err := FromSample(sample, 3)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	bytesA, bytesB := sourceA.Soften(1.0), sourceB.Soften(1.0)
	for i := range bytesA {
		if bytesA[i] != bytesB[i] {
			t.Fatal("downsampling must be deterministic")
		}
	}
}

func TestSampleFace(t *testing.T) {
	sample := Sample(basicfont.Face7x13)
	if len(sample) != core.CharCount*core.SampleCellWidth*core.SampleCellHeight {
		t.Fatalf("unexpected sample length %d", len(sample))
	}

	// the cell for 'A' must contain ink, the cell for ' ' must not
	cellLen := core.SampleCellWidth*core.SampleCellHeight
	hasInk := func(charCode int) bool {
		offset := (charCode - core.FirstCharCode)*cellLen
		for _, value := range sample[offset : offset + cellLen] {
			if value != 0 { return true }
		}
		return false
	}
	if !hasInk('A') { t.Fatal("expected ink in the 'A' cell") }
	if hasInk(' ') { t.Fatal("expected no ink in the space cell") }
}
