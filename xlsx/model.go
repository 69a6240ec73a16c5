package xlsx

import (
	"fmt"
)

// Output tree for XLSX. Field order follows the document shape consumers
// read, and optional parts are pointers so they disappear when absent.

// Alignment keeps only the values a consumer can lay out: horizontal
// center/left/right and vertical center/top/bottom.
type Alignment struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
}

// Font is the difference between a cell's font and the sheet default.
type Font struct {
	Font          string `json:"font,omitempty"`
	Size          int    `json:"size,omitempty"`
	Style         string `json:"style,omitempty"` // "bold"
	Underline     string `json:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Color         string `json:"color,omitempty"` // "#RRGGBB"
}

func (f Font) empty() bool {
	return f == Font{}
}

type BorderLine struct {
	Style string `json:"style"`
	Color string `json:"color,omitempty"`
}

// Border is either a single outline or up to four independent sides.
type Border struct {
	Outline *BorderLine `json:"outline,omitempty"`
	Top     *BorderLine `json:"top,omitempty"`
	Right   *BorderLine `json:"right,omitempty"`
	Bottom  *BorderLine `json:"bottom,omitempty"`
	Left    *BorderLine `json:"left,omitempty"`
}

type Fill struct {
	Color string `json:"color"`
}

// RenderCell is a single cell fragment (or merged anchor).
type RenderCell struct {
	ColNumber string     `json:"colnumber"` // e.g. "B"
	Value     any        `json:"value,omitempty"`
	ColSpan   int        `json:"colspan,omitempty"` // only when > 1
	RowSpan   int        `json:"rowspan,omitempty"` // only when > 1
	Alignment *Alignment `json:"alignment,omitempty"`
	Font      *Font      `json:"font,omitempty"`
	Border    *Border    `json:"border,omitempty"`
	Fill      *Fill      `json:"fill,omitempty"`
}

func (c RenderCell) String() string {
	return fmt.Sprintf("ColNumber: %s, Value: %v, ColSpan: %d, RowSpan: %d", c.ColNumber, c.Value, c.ColSpan, c.RowSpan)
}

// RenderRow represents one line of a sheet. Columns is empty for blank lines
// kept inside the trim window.
type RenderRow struct {
	LineNumber int          `json:"linenumber"`
	Columns    []RenderCell `json:"columns,omitempty"`
}

func (r RenderRow) String() string {
	return fmt.Sprintf("LineNumber: %d, Columns: %d", r.LineNumber, len(r.Columns))
}

// DefaultFont is the sheet-wide baseline font deltas are computed against.
type DefaultFont struct {
	Font string `json:"font"`
	Size int    `json:"size"`
}

// RenderSheet is the representation of one worksheet.
type RenderSheet struct {
	SheetNumber int         `json:"sheetnumber"`
	SheetName   string      `json:"sheetname"`
	Font        DefaultFont `json:"font"`
	Lines       []RenderRow `json:"lines"`
}

func (s RenderSheet) String() string {
	return fmt.Sprintf("SheetNumber: %d, SheetName: %s, Font: %s %d, Lines: %d", s.SheetNumber, s.SheetName, s.Font.Font, s.Font.Size, len(s.Lines))
}

// WorkbookModel is the top-level document containing all sheets.
type WorkbookModel struct {
	Sheets []RenderSheet `json:"sheets"`
}
