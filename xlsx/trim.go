package xlsx

// DefaultEmptyStreak is the longest run of empty rows, or of suppressed cells
// within a row, walked before the rest of the sheet or row is dropped. Sheet
// dimensions written by some producers reach far past the data.
const DefaultEmptyStreak = 50

// traversal holds the streak counters of one sheet walk.
type traversal struct {
	limit      int
	emptyRows  int
	emptyCells int
}

func newTraversal(limit int) *traversal {
	if limit <= 0 {
		limit = DefaultEmptyStreak
	}
	return &traversal{limit: limit}
}

// rows walks lines 1..MaxRow and stops once more than limit consecutive lines
// produced no columns. Blank lines inside the window are kept.
func (t *traversal) rows(g *Grid, line func(row int) []RenderCell) []RenderRow {
	out := make([]RenderRow, 0)
	for row := 1; row <= g.MaxRow; row++ {
		cols := line(row)
		if len(cols) == 0 {
			t.emptyRows++
			if t.emptyRows > t.limit {
				break
			}
		} else {
			t.emptyRows = 0
		}
		out = append(out, RenderRow{LineNumber: row, Columns: cols})
	}
	return out
}

// columns walks the cells of one line and stops once more than limit
// consecutive cells were suppressed.
func (t *traversal) columns(g *Grid, row int, cell func(row, col int) (RenderCell, bool)) []RenderCell {
	var out []RenderCell
	t.emptyCells = 0
	for col := 1; col <= g.MaxCol; col++ {
		c, ok := cell(row, col)
		if !ok {
			t.emptyCells++
			if t.emptyCells > t.limit {
				break
			}
			continue
		}
		t.emptyCells = 0
		out = append(out, c)
	}
	return out
}
