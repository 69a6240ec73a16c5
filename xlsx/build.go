package xlsx

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

const (
	fallbackFontName = "Calibri"
	fallbackFontSize = 11
)

var (
	epoch1900 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// buildGrid reads one sheet into its Grid. number is the 1-based position of
// the sheet in the workbook.
func buildGrid(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet, number int, styles *styleTable, strs sharedStrings, log logrus.FieldLogger) *Grid {
	g := NewGrid(sheet.Name(), number)
	g.Date1904 = isDate1904(wb)
	g.DefaultFont = defaultFont(styles)
	log = log.WithField("sheet", g.Name)

	if x := sheet.X(); x != nil && x.Dimension != nil {
		if row, col, ok := lastCell(x.Dimension.RefAttr); ok {
			g.Extend(row, col)
		}
	}

	prevRow := 0
	for _, row := range sheet.Rows() {
		rowNum := int(row.RowNumber())
		if rowNum == 0 {
			rowNum = prevRow + 1
		}
		prevRow = rowNum
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				log.WithError(err).WithField("line", rowNum).Debug("cell without column skipped")
				continue
			}
			rec := CellRecord{
				Coord: Coord{Row: rowNum, Col: int(reference.ColumnToIndex(colName)) + 1},
				Style: styles.record(styleID(cell)),
			}
			rec.Value = readValue(cell, rec.Style, strs, g.Date1904, log.WithField("cell", rec.Coord.String()))
			g.Set(rec)
		}
	}

	g.Merges = mergedRanges(sheet)
	for _, m := range g.Merges {
		g.Extend(m.ToRow, m.ToCol)
	}
	return g
}

// defaultFont is the font an unstyled cell of the sheet carries, that is the
// font of the base cell format.
func defaultFont(styles *styleTable) FontStyle {
	f := styles.record(0).Font
	if f.Name == "" {
		f.Name = fallbackFontName
	}
	if f.Size <= 0 {
		f.Size = fallbackFontSize
	}
	return f
}

func styleID(cell spreadsheet.Cell) uint32 {
	if x := cell.X(); x != nil && x.SAttr != nil {
		return *x.SAttr
	}
	return 0
}

func isDate1904(wb *spreadsheet.Workbook) bool {
	x := wb.X()
	return x != nil && x.WorkbookPr != nil && x.WorkbookPr.Date1904Attr != nil && *x.WorkbookPr.Date1904Attr
}

// lastCell returns the bottom-right corner of a dimension reference such as
// "A1:D20" or "C3".
func lastCell(ref string) (int, int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, 0, false
	}
	if strings.Contains(ref, ":") {
		from, to, err := reference.ParseRangeReference(ref)
		if err != nil {
			return 0, 0, false
		}
		return int(max(from.RowIdx, to.RowIdx)), int(max(from.ColumnIdx, to.ColumnIdx)) + 1, true
	}
	cr, err := reference.ParseCellReference(ref)
	if err != nil {
		return 0, 0, false
	}
	return int(cr.RowIdx), int(cr.ColumnIdx) + 1, true
}

// readValue returns the cell content as string, float64, bool or time.Time,
// or nil when the cell holds no value or it cannot be decoded.
func readValue(cell spreadsheet.Cell, style *StyleRecord, strs sharedStrings, date1904 bool, log logrus.FieldLogger) any {
	x := cell.X()
	if x == nil {
		return nil
	}
	switch x.TAttr {
	case sml.ST_CellTypeS:
		if s, ok := strs.lookup(x.V); ok {
			return s
		}
		return cell.GetString()
	case sml.ST_CellTypeInlineStr, sml.ST_CellTypeStr:
		return cell.GetString()
	case sml.ST_CellTypeB:
		b, err := cell.GetValueAsBool()
		if err != nil {
			log.WithError(err).Debug("boolean value omitted")
			return nil
		}
		return b
	case sml.ST_CellTypeE:
		if x.V == nil {
			return nil
		}
		return *x.V
	}
	if x.V == nil {
		return nil
	}
	v, err := numericValue(*x.V, style, date1904)
	if err != nil {
		log.WithError(err).Debug("numeric value omitted")
		return nil
	}
	return v
}

// numericValue decodes the raw text of a number cell. Cells typed "d" reach
// here too since the reader has no type for them; their ISO 8601 text is
// taken as a date.
func numericValue(raw string, style *StyleRecord, date1904 bool) (any, error) {
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if t, ok := parseISODate(raw); ok {
			return t, nil
		}
		return nil, err
	}
	if style.isDate() {
		return serialToTime(f, date1904), nil
	}
	return f, nil
}

// serialToTime converts a date serial of the workbook's date system.
func serialToTime(serial float64, date1904 bool) time.Time {
	base := epoch1900
	if date1904 {
		base = epoch1904
	} else if serial < 60 {
		// serials before the phantom 1900-02-29 are one day off
		base = base.AddDate(0, 0, 1)
	}
	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	return base.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
