package xlsx

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

const dateLayout = "2006/01/02"

// Legacy East Asian date formats. The reader leaves cells using them as plain
// numbers, so their serials are decoded here.
func isLegacyDateFormat(id int) bool {
	return (id >= 27 && id <= 36) || (id >= 50 && id <= 58)
}

// Day counts of legacy formats are taken from 1900-01-01 with a two day
// correction: one for day 1 being that date, one for the phantom 1900-02-29.
var legacyEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func legacySerialDate(serial float64) string {
	days := int(math.Floor(serial)) - 2
	return legacyEpoch.AddDate(0, 0, days).Format(dateLayout)
}

// ColumnName converts a 1-based column number to its letters.
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	return reference.IndexToColumn(uint32(col - 1))
}

// sheetState is the per-sheet context threaded through the serializer.
type sheetState struct {
	grid   *Grid
	colors *Resolver
	merges *mergeIndex
	log    logrus.FieldLogger
}

func newSheetState(g *Grid, colors *Resolver, log logrus.FieldLogger) *sheetState {
	return &sheetState{
		grid:   g,
		colors: colors,
		merges: newMergeIndex(g.Merges),
		log:    log.WithField("sheet", g.Name),
	}
}

// serializeCell builds the fragment of the cell at row/col. The boolean is
// false when the cell is suppressed: a non-anchor member of a merge, or a cell
// with none of value, border or fill.
func (s *sheetState) serializeCell(row, col int) (RenderCell, bool) {
	m := s.merges.Lookup(row, col)
	if m.Merged && !m.Anchor {
		return RenderCell{}, false
	}
	rec, _ := s.grid.At(row, col)
	style := rec.Style

	cell := RenderCell{ColNumber: ColumnName(col)}
	if v, ok := s.cellValue(rec); ok {
		cell.Value = v
	}
	if m.Anchor {
		if m.ColSpan > 1 {
			cell.ColSpan = m.ColSpan
		}
		if m.RowSpan > 1 {
			cell.RowSpan = m.RowSpan
		}
	}
	cell.Alignment = cellAlignment(style.Alignment)
	cell.Font = s.fontDelta(rec.Coord, style.Font)
	cell.Border = ResolveBorder(s.grid, s.colors, row, col)
	cell.Fill = s.fill(rec.Coord, style.Fill)

	if cell.Value == nil && cell.Border == nil && cell.Fill == nil {
		return RenderCell{}, false
	}
	return cell, true
}

func (s *sheetState) cellValue(rec CellRecord) (any, bool) {
	switch v := rec.Value.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case bool:
		return v, true
	case time.Time:
		return v.Format(dateLayout), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.log.WithField("cell", rec.Coord.String()).Debug("non-finite number omitted")
			return nil, false
		}
		if isLegacyDateFormat(rec.Style.NumFmtID) {
			return legacySerialDate(v), true
		}
		return v, true
	default:
		s.log.WithField("cell", rec.Coord.String()).Debugf("unexpected value type %T omitted", v)
		return nil, false
	}
}

func cellAlignment(a AlignmentStyle) *Alignment {
	var out Alignment
	switch a.Horizontal {
	case "center", "left", "right":
		out.Horizontal = a.Horizontal
	}
	switch a.Vertical {
	case "center", "top", "bottom":
		out.Vertical = a.Vertical
	}
	if out == (Alignment{}) {
		return nil
	}
	return &out
}

func (s *sheetState) fontDelta(at Coord, f FontStyle) *Font {
	var (
		base  = s.grid.DefaultFont
		delta Font
	)
	if f.Name != "" && f.Name != base.Name {
		delta.Font = f.Name
	}
	if f.Size > 0 && f.Size != base.Size {
		delta.Size = int(f.Size)
	}
	if f.Bold {
		delta.Style = "bold"
	}
	delta.Underline = f.Underline
	delta.Strikethrough = f.Strike
	if f.Color.Defined() {
		color, ok := s.colors.Resolve(f.Color)
		if !ok {
			s.unresolved(at, "font")
		} else if color != Black {
			delta.Color = color
		}
	}
	if delta.empty() {
		return nil
	}
	return &delta
}

func (s *sheetState) fill(at Coord, f FillStyle) *Fill {
	if !f.Color.Defined() {
		return nil
	}
	color, ok := s.colors.Resolve(f.Color)
	if !ok {
		s.unresolved(at, "fill")
		return nil
	}
	if color == White {
		return nil
	}
	return &Fill{Color: color}
}

func (s *sheetState) unresolved(at Coord, attribute string) {
	s.log.WithFields(logrus.Fields{
		"cell":      at.String(),
		"attribute": attribute,
	}).Debug("color not resolved, attribute omitted")
}
