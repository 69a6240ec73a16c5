package xlsx

import "github.com/unidoc/unioffice/schema/soo/sml"

// indexedPalette returns the custom indexed-color table of a style part. A
// present table replaces the standard palette wholesale. The boolean is false
// when the part carries no table.
func indexedPalette(ss *sml.StyleSheet) ([]string, bool) {
	if ss == nil || ss.Colors == nil || ss.Colors.IndexedColors == nil {
		return nil, false
	}
	entries := ss.Colors.IndexedColors.RgbColor
	if len(entries) == 0 {
		return nil, false
	}
	palette := make([]string, len(entries))
	for i, c := range entries {
		if c != nil && c.RgbAttr != nil {
			palette[i] = *c.RgbAttr
		}
	}
	return palette, true
}
