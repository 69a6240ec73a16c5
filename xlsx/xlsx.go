package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Helper to extract the underlying cell format XML struct from a style ID
func GetXfProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	x := ss.X()
	if x == nil || x.CellXfs == nil || int(styleID) >= len(x.CellXfs.Xf) {
		return nil
	}
	return x.CellXfs.Xf[styleID]
}

// Helper to extract the underlying font XML struct from a style ID
func GetFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := GetXfProps(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	fontIdx := int(*xf.FontIdAttr)
	if fontIdx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[fontIdx]
}

// Helper to extract the underlying fill XML struct from a style ID
func GetFillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := GetXfProps(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	fillIdx := int(*xf.FillIdAttr)
	if fillIdx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[fillIdx]
}

// Helper to extract the underlying border XML struct from a style ID
func GetBorderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := GetXfProps(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	borderIdx := int(*xf.BorderIdAttr)
	if borderIdx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[borderIdx]
}

// themeSlots is the number of colors a theme color scheme defines.
const themeSlots = 12

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil || themes[0].ThemeElements.ClrScheme == nil {
		return "", false
	}
	clrScheme := themes[0].ThemeElements.ClrScheme

	// Cell styles count the light colors first: 0 and 1 are lt1/dk1,
	// 2 and 3 are lt2/dk2, the reverse of the scheme's element order.
	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = clrScheme.Lt1
	case 1:
		clr = clrScheme.Dk1
	case 2:
		clr = clrScheme.Lt2
	case 3:
		clr = clrScheme.Dk2
	case 4:
		clr = clrScheme.Accent1
	case 5:
		clr = clrScheme.Accent2
	case 6:
		clr = clrScheme.Accent3
	case 7:
		clr = clrScheme.Accent4
	case 8:
		clr = clrScheme.Accent5
	case 9:
		clr = clrScheme.Accent6
	case 10:
		clr = clrScheme.Hlink
	case 11:
		clr = clrScheme.FolHlink
	default:
		return "", false
	}

	if clr == nil {
		return "", false
	}

	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}

// ThemeTable lists the workbook's theme colors in index order. Unresolvable
// slots are left empty, which the Resolver treats as "no color".
func ThemeTable(wb *spreadsheet.Workbook) []string {
	table := make([]string, themeSlots)
	for i := range table {
		if rgb, ok := ThemeColorToRGB(wb, i); ok {
			table[i] = rgb
		}
	}
	return table
}

// colorSpec converts a reader color into a ColorSpec. Automatic colors carry
// no value and come back empty.
func colorSpec(c *sml.CT_Color) ColorSpec {
	if c == nil {
		return ColorSpec{}
	}
	switch {
	case c.RgbAttr != nil && *c.RgbAttr != "":
		return RGBColor(*c.RgbAttr)
	case c.ThemeAttr != nil:
		var tint float64
		if c.TintAttr != nil {
			tint = *c.TintAttr
		}
		return ThemeColor(int(*c.ThemeAttr), tint)
	case c.IndexedAttr != nil:
		return IndexedColor(int(*c.IndexedAttr))
	default:
		return ColorSpec{}
	}
}

func boolProp(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 || props[0] == nil {
		return false
	}
	return props[0].ValAttr == nil || *props[0].ValAttr
}

func fontStyle(font *sml.CT_Font) FontStyle {
	var fs FontStyle
	if font == nil {
		return fs
	}
	if len(font.Name) > 0 && font.Name[0] != nil {
		fs.Name = font.Name[0].ValAttr
	}
	if len(font.Sz) > 0 && font.Sz[0] != nil {
		fs.Size = font.Sz[0].ValAttr
	}
	fs.Bold = boolProp(font.B)
	fs.Strike = boolProp(font.Strike)
	if len(font.U) > 0 && font.U[0] != nil {
		switch u := font.U[0].ValAttr; u {
		case sml.ST_UnderlineValuesUnset:
			fs.Underline = "single"
		case sml.ST_UnderlineValuesNone:
		default:
			fs.Underline = u.String()
		}
	}
	if len(font.Color) > 0 {
		fs.Color = colorSpec(font.Color[0])
	}
	return fs
}

func borderSide(pr *sml.CT_BorderPr) BorderSide {
	if pr == nil {
		return BorderSide{}
	}
	switch pr.StyleAttr {
	case sml.ST_BorderStyleUnset, sml.ST_BorderStyleNone:
		return BorderSide{}
	}
	return BorderSide{
		Style: pr.StyleAttr.String(),
		Color: colorSpec(pr.Color),
	}
}

// Builtin number formats holding a calendar date. Time-only and duration
// formats (18-21, 45-47) stay numeric, and legacy East Asian formats are
// decoded separately, see isLegacyDateFormat.
func isBuiltinDateFormat(id int) bool {
	return (id >= 14 && id <= 17) || id == 22
}

// isDateFormatCode reports whether a custom format code renders a calendar
// date: a year or day token outside quoted text and bracketed sections.
func isDateFormatCode(code string) bool {
	var (
		quoted  bool
		bracket bool
		escaped bool
	)
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case r == 'y' || r == 'd':
			return true
		}
	}
	return false
}

// styleTable flattens cell formats into StyleRecords, one per format index.
// It is filled while grids are built and only read afterwards.
type styleTable struct {
	ss      spreadsheet.StyleSheet
	numFmts map[uint32]string
	records map[uint32]*StyleRecord
}

func newStyleTable(wb *spreadsheet.Workbook) *styleTable {
	t := &styleTable{
		ss:      wb.StyleSheet,
		numFmts: make(map[uint32]string),
		records: make(map[uint32]*StyleRecord),
	}
	if x := wb.StyleSheet.X(); x != nil && x.NumFmts != nil {
		for _, nf := range x.NumFmts.NumFmt {
			if nf != nil {
				t.numFmts[nf.NumFmtIdAttr] = nf.FormatCodeAttr
			}
		}
	}
	return t
}

func (t *styleTable) record(styleID uint32) *StyleRecord {
	if rec, ok := t.records[styleID]; ok {
		return rec
	}
	rec := &StyleRecord{
		Font: fontStyle(GetFontProps(t.ss, styleID)),
	}
	if xf := GetXfProps(t.ss, styleID); xf != nil {
		if xf.NumFmtIdAttr != nil {
			rec.NumFmtID = int(*xf.NumFmtIdAttr)
			rec.NumFmtCode = t.numFmts[*xf.NumFmtIdAttr]
		}
		if xf.Alignment != nil {
			rec.Alignment = AlignmentStyle{
				Horizontal: xf.Alignment.HorizontalAttr.String(),
				Vertical:   xf.Alignment.VerticalAttr.String(),
			}
		}
	}
	if fill := GetFillProps(t.ss, styleID); fill != nil && fill.PatternFill != nil {
		rec.Fill = FillStyle{Color: colorSpec(fill.PatternFill.FgColor)}
	}
	if border := GetBorderProps(t.ss, styleID); border != nil {
		rec.Border[SideTop] = borderSide(border.Top)
		rec.Border[SideRight] = borderSide(border.Right)
		rec.Border[SideBottom] = borderSide(border.Bottom)
		rec.Border[SideLeft] = borderSide(border.Left)
	}
	t.records[styleID] = rec
	return rec
}

// isDate reports whether numbers formatted with rec are calendar dates the
// reader classifies itself.
func (rec *StyleRecord) isDate() bool {
	if rec.NumFmtCode != "" {
		return isDateFormatCode(rec.NumFmtCode)
	}
	return isBuiltinDateFormat(rec.NumFmtID)
}
