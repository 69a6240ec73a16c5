package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unioffice/spreadsheet"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnreadable is returned when the container cannot be opened or decoded.
	ErrUnreadable = errors.New("workbook unreadable")
	// ErrNoSheets is returned for a workbook without any worksheet.
	ErrNoSheets = errors.New("workbook has no sheets")
)

// Options tunes a conversion. The zero value gives the reference behavior.
type Options struct {
	// EmptyStreak bounds runs of empty rows and cells, DefaultEmptyStreak when <= 0.
	EmptyStreak int
	// Workers is the number of sheets assembled concurrently, 1 when <= 0.
	// Output order does not depend on it.
	Workers int
	// Logger receives cell-level degradations at debug level; nil discards them.
	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.EmptyStreak <= 0 {
		o.EmptyStreak = DefaultEmptyStreak
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	return o
}

// ParseWorkbookModel reads an XLSX from r/size and returns the document tree.
func ParseWorkbookModel(r io.ReaderAt, size int64, opts Options) (WorkbookModel, error) {
	opts = opts.withDefaults()

	var wb *spreadsheet.Workbook
	err := safely(func() error {
		var err error
		wb, err = spreadsheet.Read(r, size)
		return err
	})
	if err != nil {
		return WorkbookModel{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return WorkbookModel{}, ErrNoSheets
	}

	palette, custom := indexedPalette(wb.StyleSheet.X())
	if custom {
		opts.Logger.WithField("entries", len(palette)).Debug("custom indexed palette loaded")
	}
	colors := NewResolver(ThemeTable(wb), palette)

	// Grids are built one after the other since they read the shared reader
	// objects. Once built they are immutable and can be assembled in parallel.
	styles := newStyleTable(wb)
	strs := loadSharedStrings(r, size)
	grids := make([]*Grid, len(sheets))
	for i, sheet := range sheets {
		err := safely(func() error {
			grids[i] = buildGrid(wb, sheet, i+1, styles, strs, opts.Logger)
			return nil
		})
		if err != nil {
			return WorkbookModel{}, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheet.Name(), err)
		}
	}

	model := WorkbookModel{Sheets: make([]RenderSheet, len(grids))}
	var group errgroup.Group
	group.SetLimit(opts.Workers)
	for i, g := range grids {
		group.Go(func() error {
			return safely(func() error {
				model.Sheets[i] = AssembleSheet(g, colors, opts)
				return nil
			})
		})
	}
	if err := group.Wait(); err != nil {
		return WorkbookModel{}, err
	}
	return model, nil
}

// AssembleSheet walks a grid through the trimmer and the cell serializer.
func AssembleSheet(g *Grid, colors *Resolver, opts Options) RenderSheet {
	opts = opts.withDefaults()
	state := newSheetState(g, colors, opts.Logger)
	walk := newTraversal(opts.EmptyStreak)

	lines := walk.rows(g, func(row int) []RenderCell {
		return walk.columns(g, row, state.serializeCell)
	})
	return RenderSheet{
		SheetNumber: g.Number,
		SheetName:   g.Name,
		Font: DefaultFont{
			Font: g.DefaultFont.Name,
			Size: int(g.DefaultFont.Size),
		},
		Lines: lines,
	}
}

// safely runs fn and turns a panic into an error. The reader is a third-party
// library and malformed parts must not bring down the caller.
func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return fn()
}
