package theme

import "github.com/pixelview/minichar/core"

import "github.com/lucasb-eyer/go-colorful"

// ChangeKind discriminates upstream theme notifications. Only changes
// to the token color map itself trigger a palette rebuild; unrelated
// style changes are ignored by the tracker.
type ChangeKind uint8

const (
	ChangeTokenColors ChangeKind = iota // the identifier -> color map changed
	ChangeTokenStyles                   // font style flags changed, colors unaffected
)

// A SourceColor is a floating point color entry of the upstream color
// map, channels in [0, 1]. The RGB part embeds [colorful.Color] so
// hosts can produce entries straight from color-space conversions.
type SourceColor struct {
	colorful.Color
	Alpha float64
}

func (self SourceColor) rgba8() core.Color {
	return core.ColorFromFloats(self.R, self.G, self.B, self.Alpha)
}

// A Source provides the current upstream color map. Index 0 is treated
// specially (it always resolves to the transparent sentinel); the
// remaining indices are dense color identifiers assigned by the
// external tokenization system.
//
// A nil or empty result signals that no color map is available.
type Source interface {
	ColorMap() []SourceColor
}

// A Tracker is the shared source of truth for resolving color
// identifiers to display colors, kept in sync with a push-based
// upstream source.
//
// There is exactly one tracker per upstream source: create it once at
// your composition root with [NewTracker]() and pass the reference to
// every consumer. Trackers are not safe for concurrent use; the host
// must invoke their methods from a single goroutine.
type Tracker struct {
	source Source
	colors []core.Color
	backgroundIsLight bool
	listeners []func()
}

// NewTracker creates a tracker bound to the given source and builds
// the initial palette from it. A nil source is a precondition
// violation and will make the function panic.
func NewTracker(source Source) *Tracker {
	if source == nil { panic("nil source") }
	tracker := &Tracker{ source: source }
	tracker.rebuild()
	return tracker
}

// GetColor resolves a color identifier to its display color. Out of
// range identifiers (id < 1 or id >= palette length) resolve to the
// default background identifier instead; if that one is also missing
// from the current palette, the transparent sentinel is returned.
// GetColor never fails.
func (self *Tracker) GetColor(colorID core.ColorID) core.Color {
	if colorID < 1 || int(colorID) >= len(self.colors) {
		colorID = core.ColorIDBackground
	}
	if int(colorID) >= len(self.colors) {
		return self.colors[0] // single-sentinel palette
	}
	return self.colors[colorID]
}

// BackgroundIsLight returns the background lightness classification
// cached at the last palette rebuild: true when the relative luminance
// of the resolved default background color is >= [LightnessThreshold].
func (self *Tracker) BackgroundIsLight() bool {
	return self.backgroundIsLight
}

// OnDidChange registers a listener invoked after every palette
// rebuild. Listeners run synchronously on the notifying goroutine, in
// registration order, exactly once per rebuild, and only after the
// palette and the lightness flag are both updated. A nil listener is a
// precondition violation and will make the method panic.
func (self *Tracker) OnDidChange(listener func()) {
	if listener == nil { panic("nil listener") }
	self.listeners = append(self.listeners, listener)
}

// NotifyThemeChange is the push channel for upstream changes. Kinds
// other than [ChangeTokenColors] leave the tracker untouched.
func (self *Tracker) NotifyThemeChange(kind ChangeKind) {
	if kind != ChangeTokenColors { return }
	self.rebuild()
}

// Rebuilds the palette wholesale from the current source color map.
// The old palette is discarded, never patched in place.
func (self *Tracker) rebuild() {
	sourceMap := self.source.ColorMap()
	if len(sourceMap) == 0 {
		self.colors = []core.Color{core.ColorEmpty}
		self.backgroundIsLight = true
		return
	}

	colors := make([]core.Color, len(sourceMap))
	colors[0] = core.ColorEmpty
	for i := 1; i < len(sourceMap); i++ {
		colors[i] = sourceMap[i].rgba8()
	}
	self.colors = colors
	self.backgroundIsLight = Luminance(self.GetColor(core.ColorIDBackground)) >= LightnessThreshold

	for _, listener := range self.listeners { listener() }
}
