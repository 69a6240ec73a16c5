package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// MergeRange is an inclusive block of merged cells, 1-based.
type MergeRange struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

func (m MergeRange) Contains(row, col int) bool {
	return row >= m.FromRow && row <= m.ToRow && col >= m.FromCol && col <= m.ToCol
}

func (m MergeRange) ColSpan() int { return m.ToCol - m.FromCol + 1 }
func (m MergeRange) RowSpan() int { return m.ToRow - m.FromRow + 1 }

func (m MergeRange) String() string {
	return fmt.Sprintf("%s:%s", Coord{m.FromRow, m.FromCol}, Coord{m.ToRow, m.ToCol})
}

// Membership says how a cell relates to the merged ranges of its sheet.
type Membership struct {
	Merged  bool
	Anchor  bool
	ColSpan int
	RowSpan int
}

// mergeIndex answers membership queries for one sheet. Anchors are looked up
// by coordinate; non-anchor members are found by scanning the ranges, which
// avoids materializing ranges spanning whole columns.
type mergeIndex struct {
	anchors map[Coord]MergeRange
	ranges  []MergeRange
}

func newMergeIndex(ranges []MergeRange) *mergeIndex {
	m := &mergeIndex{
		anchors: make(map[Coord]MergeRange, len(ranges)),
		ranges:  ranges,
	}
	for _, r := range ranges {
		m.anchors[Coord{Row: r.FromRow, Col: r.FromCol}] = r
	}
	return m
}

func (m *mergeIndex) Lookup(row, col int) Membership {
	if r, ok := m.anchors[Coord{Row: row, Col: col}]; ok {
		return Membership{
			Merged:  true,
			Anchor:  true,
			ColSpan: r.ColSpan(),
			RowSpan: r.RowSpan(),
		}
	}
	for _, r := range m.ranges {
		if r.Contains(row, col) {
			return Membership{
				Merged:  true,
				ColSpan: r.ColSpan(),
				RowSpan: r.RowSpan(),
			}
		}
	}
	return Membership{}
}

// mergedRanges reads the merge list of a sheet. References that do not parse
// are skipped.
func mergedRanges(sheet spreadsheet.Sheet) []MergeRange {
	x := sheet.X()
	if x == nil || x.MergeCells == nil {
		return nil
	}
	var out []MergeRange
	for _, mc := range x.MergeCells.MergeCell {
		if mc == nil {
			continue
		}
		from, to, err := reference.ParseRangeReference(mc.RefAttr)
		if err != nil {
			continue
		}
		r := MergeRange{
			FromRow: int(from.RowIdx),
			FromCol: int(from.ColumnIdx) + 1,
			ToRow:   int(to.RowIdx),
			ToCol:   int(to.ColumnIdx) + 1,
		}
		if r.FromRow > r.ToRow {
			r.FromRow, r.ToRow = r.ToRow, r.FromRow
		}
		if r.FromCol > r.ToCol {
			r.FromCol, r.ToCol = r.ToCol, r.FromCol
		}
		out = append(out, r)
	}
	return out
}
