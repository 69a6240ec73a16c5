package xlsx

import (
	"slices"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind tells which of the three color models a ColorSpec carries.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorRGB
	ColorIndexed
	ColorTheme
)

// ColorSpec is a color as stored in a style record, before resolution.
type ColorSpec struct {
	Kind  ColorKind
	RGB   string  // ARGB or RGB hex, ColorRGB only
	Index int     // palette index or theme index
	Tint  float64 // ColorTheme only, in [-1, 1]
}

func RGBColor(argb string) ColorSpec {
	return ColorSpec{Kind: ColorRGB, RGB: argb}
}

func IndexedColor(index int) ColorSpec {
	return ColorSpec{Kind: ColorIndexed, Index: index}
}

func ThemeColor(index int, tint float64) ColorSpec {
	return ColorSpec{Kind: ColorTheme, Index: index, Tint: tint}
}

// Defined reports whether c names a color at all.
func (c ColorSpec) Defined() bool {
	return c.Kind != ColorNone
}

const (
	White = "#FFFFFF"
	Black = "#000000"

	// fully transparent black, written by some producers to mean "no color"
	transparentBlack = "00000000"

	indexedWhite = 63
	indexedBlack = 64
)

// Standard indexed palette (ARGB).
// https://github.com/ClosedXML/ClosedXML/wiki/Excel-Indexed-Colors
var defaultIndexedColors = []string{
	"FF000000", "FFFFFFFF", "FFFF0000", "FF00FF00", "FF0000FF", "FFFFFF00", "FFFF00FF", "FF00FFFF",
	"FF000000", "FFFFFFFF", "FFFF0000", "FF00FF00", "FF0000FF", "FFFFFF00", "FFFF00FF", "FF00FFFF",
	"FF800000", "FF008000", "FF000080", "FF808000", "FF800080", "FF008080", "FFC0C0C0", "FF808080",
	"FF9999FF", "FF993366", "FFFFFFCC", "FFCCFFFF", "FF660066", "FFFF8080", "FF0066CC", "FFCCCCFF",
	"FF000080", "FFFF00FF", "FFFFFF00", "FF00FFFF", "FF800080", "FF800000", "FF008080", "FF0000FF",
	"FF00CCFF", "FFCCFFFF", "FFCCFFCC", "FFFFFF99", "FF99CCFF", "FFFF99CC", "FFCC99FF", "FFFFCC99",
	"FF3366FF", "FF33CCCC", "FF99CC00", "FFFFCC00", "FFFF9900", "FFFF6600", "FF666699", "FF969696",
	"FF003366", "FF339966", "FF003300", "FF333300", "FF993300", "FF993366", "FF333399", "FF333333",
}

// DefaultPalette returns a copy of the standard 64-entry indexed palette.
func DefaultPalette() []string {
	return slices.Clone(defaultIndexedColors)
}

// Resolver turns ColorSpecs into canonical "#RRGGBB" strings using the
// workbook's theme table and active indexed palette. A Resolver is never
// modified after NewResolver returns, so sheets may share one.
type Resolver struct {
	palette []string
	theme   []string
}

// NewResolver builds a resolver. theme holds RGB hex strings in theme index
// order; an empty palette selects the standard one.
func NewResolver(theme, palette []string) *Resolver {
	if len(palette) == 0 {
		palette = defaultIndexedColors
	}
	return &Resolver{
		palette: slices.Clone(palette),
		theme:   slices.Clone(theme),
	}
}

// Resolve returns the color as "#RRGGBB". The boolean is false when c
// is empty or cannot be resolved; callers treat that as "inherit default".
func (r *Resolver) Resolve(c ColorSpec) (string, bool) {
	switch c.Kind {
	case ColorRGB:
		return resolveDirect(c.RGB)
	case ColorIndexed:
		return r.resolveIndexed(c.Index)
	case ColorTheme:
		return r.resolveTheme(c.Index, c.Tint)
	default:
		return "", false
	}
}

func resolveDirect(argb string) (string, bool) {
	argb = strings.TrimPrefix(strings.TrimSpace(argb), "#")
	if argb == transparentBlack {
		return White, true
	}
	return canonicalHex(argb)
}

func (r *Resolver) resolveIndexed(index int) (string, bool) {
	switch index {
	case indexedWhite:
		return White, true
	case indexedBlack:
		return Black, true
	}
	if index < 0 || index >= len(r.palette) {
		return "", false
	}
	return canonicalHex(r.palette[index])
}

func (r *Resolver) resolveTheme(index int, tint float64) (string, bool) {
	if index < 0 || index >= len(r.theme) {
		return "", false
	}
	base, ok := canonicalHex(r.theme[index])
	if !ok {
		return "", false
	}
	return applyTint(base, tint)
}

// applyTint moves the luminance of base toward white (tint > 0) or black
// (tint < 0), keeping hue and saturation.
func applyTint(base string, tint float64) (string, bool) {
	if tint == 0 {
		return base, true
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return "", false
	}
	tint = min(max(tint, -1), 1)
	h, s, l := c.Hsl()
	if tint < 0 {
		l = l * (1 + tint)
	} else {
		l = l*(1-tint) + tint
	}
	return strings.ToUpper(colorful.Hsl(h, s, l).Clamped().Hex()), true
}

// canonicalHex strips an optional alpha byte and upper-cases the digits.
func canonicalHex(v string) (string, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(v) == 8 {
		v = v[2:]
	}
	if len(v) != 6 || !isHex(v) {
		return "", false
	}
	return "#" + strings.ToUpper(v), true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
