package xlsx

import "testing"

func valueGrid(cells ...Coord) *Grid {
	g := NewGrid("Sheet1", 1)
	g.DefaultFont = FontStyle{Name: "Calibri", Size: 11}
	for _, c := range cells {
		g.Set(CellRecord{Coord: c, Value: c.String()})
	}
	return g
}

func TestTrimKeepsRowsInsideWindow(t *testing.T) {
	// rows 2..51 are empty: a streak of exactly 50
	g := valueGrid(Coord{1, 1}, Coord{52, 1})
	sheet := AssembleSheet(g, NewResolver(nil, nil), Options{})

	if len(sheet.Lines) != 52 {
		t.Fatalf("got %d lines, want 52", len(sheet.Lines))
	}
	last := sheet.Lines[51]
	if last.LineNumber != 52 || len(last.Columns) != 1 || last.Columns[0].Value != "A52" {
		t.Fatalf("last line = %+v", last)
	}
	for _, line := range sheet.Lines[1:51] {
		if len(line.Columns) != 0 {
			t.Fatalf("line %d has columns", line.LineNumber)
		}
	}
}

func TestTrimDropsRowsPastWindow(t *testing.T) {
	// rows 2..52 are empty: the 51st empty row ends the walk
	g := valueGrid(Coord{1, 1}, Coord{53, 1})
	sheet := AssembleSheet(g, NewResolver(nil, nil), Options{})

	if len(sheet.Lines) != 51 {
		t.Fatalf("got %d lines, want 51", len(sheet.Lines))
	}
	if n := sheet.Lines[len(sheet.Lines)-1].LineNumber; n != 51 {
		t.Fatalf("last line number = %d, want 51", n)
	}
}

func TestTrimColumns(t *testing.T) {
	g := valueGrid(Coord{1, 1}, Coord{1, 52}, Coord{2, 1}, Coord{2, 53})
	sheet := AssembleSheet(g, NewResolver(nil, nil), Options{})

	if got := len(sheet.Lines[0].Columns); got != 2 {
		t.Fatalf("line 1 has %d columns, want 2", got)
	}
	if got := sheet.Lines[0].Columns[1].ColNumber; got != "AZ" {
		t.Fatalf("line 1 second column = %s, want AZ", got)
	}
	if got := len(sheet.Lines[1].Columns); got != 1 {
		t.Fatalf("line 2 has %d columns, want 1", got)
	}
}

func TestTrimCustomStreak(t *testing.T) {
	g := valueGrid(Coord{1, 1}, Coord{5, 1})
	sheet := AssembleSheet(g, NewResolver(nil, nil), Options{EmptyStreak: 2})

	if len(sheet.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(sheet.Lines))
	}
}

func TestTrimEmptySheet(t *testing.T) {
	g := valueGrid()
	sheet := AssembleSheet(g, NewResolver(nil, nil), Options{})
	if sheet.Lines == nil || len(sheet.Lines) != 0 {
		t.Fatalf("lines = %#v, want empty non-nil", sheet.Lines)
	}
}
