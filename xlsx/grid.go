package xlsx

import "fmt"

// FontStyle is the font part of a cell format.
type FontStyle struct {
	Name      string
	Size      float64
	Bold      bool
	Underline string // underline kind, "" when not underlined
	Strike    bool
	Color     ColorSpec
}

// BorderSide is one edge of a cell border. Style is the reader's line style
// name ("thin", "medium", ...); empty means no line.
type BorderSide struct {
	Style string
	Color ColorSpec
}

// Defined reports whether the side carries both a line style and a color.
// Anything less does not count as a border owned by the cell.
func (b BorderSide) Defined() bool {
	return b.Style != "" && b.Color.Defined()
}

// FillStyle is the foreground color of a pattern fill.
type FillStyle struct {
	Color ColorSpec
}

type AlignmentStyle struct {
	Horizontal string
	Vertical   string
}

// StyleRecord is a flattened cell format. Records are shared between cells
// using the same format and are never modified once built.
type StyleRecord struct {
	NumFmtID   int
	NumFmtCode string
	Font       FontStyle
	Fill       FillStyle
	Border     [4]BorderSide // indexed by Side
	Alignment  AlignmentStyle
}

var emptyStyle = &StyleRecord{}

type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%s%d", ColumnName(c.Col), c.Row)
}

// CellRecord is a single cell of the grid. Value holds a string, float64,
// bool or time.Time, or nil for a cell carrying formatting only.
type CellRecord struct {
	Coord
	Value any
	Style *StyleRecord
}

// Grid is the immutable per-sheet view the resolvers work on: cell records
// stored in one slice and addressed through a coordinate index, so neighbor
// lookups never go back to the reader.
type Grid struct {
	Name        string
	Number      int // 1-based position in the workbook
	MaxRow      int
	MaxCol      int
	DefaultFont FontStyle
	Merges      []MergeRange
	Date1904    bool

	cells []CellRecord
	index map[Coord]int
}

func NewGrid(name string, number int) *Grid {
	return &Grid{
		Name:   name,
		Number: number,
		index:  make(map[Coord]int),
	}
}

// Set stores rec, replacing any record at the same coordinate, and grows the
// grid extents to cover it. Only used while the grid is being built.
func (g *Grid) Set(rec CellRecord) {
	if rec.Row < 1 || rec.Col < 1 {
		return
	}
	if rec.Style == nil {
		rec.Style = emptyStyle
	}
	if i, ok := g.index[rec.Coord]; ok {
		g.cells[i] = rec
	} else {
		g.index[rec.Coord] = len(g.cells)
		g.cells = append(g.cells, rec)
	}
	g.Extend(rec.Row, rec.Col)
}

// Extend grows the declared extents to include row and col.
func (g *Grid) Extend(row, col int) {
	g.MaxRow = max(g.MaxRow, row)
	g.MaxCol = max(g.MaxCol, col)
}

// At returns the record stored at row/col.
func (g *Grid) At(row, col int) (CellRecord, bool) {
	i, ok := g.index[Coord{Row: row, Col: col}]
	if !ok {
		return CellRecord{Coord: Coord{Row: row, Col: col}, Style: emptyStyle}, false
	}
	return g.cells[i], true
}

// StyleAt returns the format of the cell at row/col, or an empty format when
// the cell does not exist.
func (g *Grid) StyleAt(row, col int) *StyleRecord {
	rec, _ := g.At(row, col)
	return rec.Style
}
