package xlsx

// Side names one edge of a cell.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var allSides = [...]Side{SideTop, SideRight, SideBottom, SideLeft}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return ""
	}
}

// Opposite is the side a neighbor shares with s.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// neighbor returns the coordinate of the adjacent cell in direction s.
func (s Side) neighbor(row, col int) (int, int) {
	switch s {
	case SideTop:
		return row - 1, col
	case SideRight:
		return row, col + 1
	case SideBottom:
		return row + 1, col
	default:
		return row, col - 1
	}
}

// borderStyleName maps reader line styles onto the output vocabulary.
func borderStyleName(style string) string {
	switch style {
	case "medium":
		return "thick"
	case "thick":
		return "extrathick"
	case "double":
		return "double"
	default:
		return "single"
	}
}

// ResolveSide returns the effective border of one side of the cell at
// row/col as [style, color], [style] when the color does not resolve, or nil
// when the side has no line.
//
// Either cell sharing an edge may own its line. When the cell defines nothing
// on s, the neighbor's opposite side is used instead. Cells on the first row
// or column have no neighbor above or to the left.
func ResolveSide(g *Grid, colors *Resolver, row, col int, s Side) []string {
	side := g.StyleAt(row, col).Border[s]
	if !side.Defined() {
		nr, nc := s.neighbor(row, col)
		if nr < 1 || nc < 1 {
			return nil
		}
		side = g.StyleAt(nr, nc).Border[s.Opposite()]
		if !side.Defined() {
			return nil
		}
	}
	out := []string{borderStyleName(side.Style)}
	if color, ok := colors.Resolve(side.Color); ok {
		out = append(out, color)
	}
	return out
}

// ResolveBorder resolves all four sides of the cell at row/col. Four equal
// sides collapse into a single outline; otherwise only sides with a line are
// kept. It returns nil when no side has a line.
func ResolveBorder(g *Grid, colors *Resolver, row, col int) *Border {
	var resolved [4][]string
	for _, s := range allSides {
		resolved[s] = ResolveSide(g, colors, row, col, s)
	}
	if uniform(resolved) {
		return &Border{Outline: borderLine(resolved[SideTop])}
	}
	var (
		b     Border
		found bool
	)
	for _, s := range allSides {
		line := borderLine(resolved[s])
		if line == nil {
			continue
		}
		found = true
		switch s {
		case SideTop:
			b.Top = line
		case SideRight:
			b.Right = line
		case SideBottom:
			b.Bottom = line
		case SideLeft:
			b.Left = line
		}
	}
	if !found {
		return nil
	}
	return &b
}

func uniform(sides [4][]string) bool {
	first := sides[0]
	if len(first) == 0 {
		return false
	}
	for _, other := range sides[1:] {
		if len(other) != len(first) {
			return false
		}
		for i := range first {
			if other[i] != first[i] {
				return false
			}
		}
	}
	return true
}

func borderLine(resolved []string) *BorderLine {
	if len(resolved) == 0 {
		return nil
	}
	line := BorderLine{Style: resolved[0]}
	if len(resolved) > 1 {
		line.Color = resolved[1]
	}
	return &line
}
