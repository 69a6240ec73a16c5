package xlsx

import (
	"testing"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

func TestIsDateFormatCode(t *testing.T) {
	tests := map[string]bool{
		"yyyy-mm-dd":          true,
		"d/m/yy":              true,
		"[$-409]mmmm d, yyyy": true,
		"0.00":                false,
		"#,##0":               false,
		"hh:mm:ss":            false,
		`"day "0`:             false,
		`0\d`:                 false,
		"[Red]0.00":           false,
		"General":             false,
	}
	for code, want := range tests {
		if got := isDateFormatCode(code); got != want {
			t.Errorf("isDateFormatCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestStyleRecordIsDate(t *testing.T) {
	tests := []struct {
		rec  StyleRecord
		want bool
	}{
		{StyleRecord{NumFmtID: 14}, true},
		{StyleRecord{NumFmtID: 17}, true},
		{StyleRecord{NumFmtID: 22}, true},
		{StyleRecord{NumFmtID: 18}, false},
		{StyleRecord{NumFmtID: 20}, false},
		{StyleRecord{NumFmtID: 21}, false},
		{StyleRecord{NumFmtID: 45}, false},
		{StyleRecord{NumFmtID: 46}, false},
		{StyleRecord{NumFmtID: 47}, false},
		{StyleRecord{NumFmtID: 2}, false},
		{StyleRecord{NumFmtID: 56}, false},
		{StyleRecord{NumFmtID: 164, NumFmtCode: "dd.mm.yyyy"}, true},
		{StyleRecord{NumFmtID: 165, NumFmtCode: "0.0%"}, false},
	}
	for _, tt := range tests {
		if got := tt.rec.isDate(); got != tt.want {
			t.Errorf("isDate(%d %q) = %v, want %v", tt.rec.NumFmtID, tt.rec.NumFmtCode, got, tt.want)
		}
	}
}

func TestColorSpec(t *testing.T) {
	rgb := "FF112233"
	theme := uint32(4)
	tint := -0.25
	indexed := uint32(10)

	tests := []struct {
		in   *sml.CT_Color
		want ColorSpec
	}{
		{nil, ColorSpec{}},
		{&sml.CT_Color{}, ColorSpec{}},
		{&sml.CT_Color{RgbAttr: &rgb}, RGBColor(rgb)},
		{&sml.CT_Color{ThemeAttr: &theme, TintAttr: &tint}, ThemeColor(4, -0.25)},
		{&sml.CT_Color{ThemeAttr: &theme}, ThemeColor(4, 0)},
		{&sml.CT_Color{IndexedAttr: &indexed}, IndexedColor(10)},
	}
	for i, tt := range tests {
		if got := colorSpec(tt.in); got != tt.want {
			t.Errorf("case %d: colorSpec = %+v, want %+v", i, got, tt.want)
		}
	}
}

func TestFontStyle(t *testing.T) {
	rgb := "FF00FF00"
	font := &sml.CT_Font{
		Name:   []*sml.CT_FontName{{ValAttr: "Arial"}},
		Sz:     []*sml.CT_FontSize{{ValAttr: 14}},
		B:      []*sml.CT_BooleanProperty{{}},
		U:      []*sml.CT_UnderlineProperty{{ValAttr: sml.ST_UnderlineValuesDouble}},
		Strike: []*sml.CT_BooleanProperty{{}},
		Color:  []*sml.CT_Color{{RgbAttr: &rgb}},
	}
	want := FontStyle{
		Name:      "Arial",
		Size:      14,
		Bold:      true,
		Underline: "double",
		Strike:    true,
		Color:     RGBColor(rgb),
	}
	if got := fontStyle(font); got != want {
		t.Fatalf("fontStyle = %+v, want %+v", got, want)
	}
	if got := fontStyle(nil); got != (FontStyle{}) {
		t.Fatalf("fontStyle(nil) = %+v", got)
	}

	plain := &sml.CT_Font{U: []*sml.CT_UnderlineProperty{{}}}
	if got := fontStyle(plain).Underline; got != "single" {
		t.Fatalf("underline without value = %q, want single", got)
	}
}

func TestBorderSide(t *testing.T) {
	rgb := "FF000000"
	tests := []struct {
		in   *sml.CT_BorderPr
		want BorderSide
	}{
		{nil, BorderSide{}},
		{&sml.CT_BorderPr{}, BorderSide{}},
		{&sml.CT_BorderPr{StyleAttr: sml.ST_BorderStyleNone}, BorderSide{}},
		{&sml.CT_BorderPr{StyleAttr: sml.ST_BorderStyleThin}, BorderSide{Style: "thin"}},
		{
			&sml.CT_BorderPr{StyleAttr: sml.ST_BorderStyleMedium, Color: &sml.CT_Color{RgbAttr: &rgb}},
			BorderSide{Style: "medium", Color: RGBColor(rgb)},
		},
	}
	for i, tt := range tests {
		if got := borderSide(tt.in); got != tt.want {
			t.Errorf("case %d: borderSide = %+v, want %+v", i, got, tt.want)
		}
	}
}
