// minichar is a package for minimap-style character rasterization: it
// renders proportionally scaled, alpha-blended representations of text
// characters into raw RGBA pixel buffers using pre-sampled glyph
// atlases instead of live font rendering, and it keeps a theme-derived
// color palette in sync with external color scheme changes.
//
// To get started, build a renderer from atlas data and a color tracker
// from your theme source:
//   renderer, err := minichar.NewRenderer(atlasData, scale)
//   if err != nil { panic(err) }
//   tracker := theme.NewTracker(themeSource)
//
// Your layout code then resolves colors and blits glyphs:
//   fg := tracker.GetColor(tokenColorID)
//   bg := tracker.GetColor(core.ColorIDBackground)
//   renderer.RenderChar(buffer, dx, dy, charCode, fg, bg, false)
//
// The two components never call each other; wiring them together is
// the host's job. Minimap layout, tokenization and atlas generation
// all live outside this module, though the [atlas] package offers
// helpers to produce atlas data from font faces.
package minichar
