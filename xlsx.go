package sheetjson

import (
	"bytes"
	"io"

	"github.com/aerissecure/sheetjson/xlsx"
)

// Each conversion builds its own workbook, palette and grids; nothing is
// shared between calls, so concurrent conversions are safe.

// XlsxToJSON converts the workbook read from r/size into its JSON document.
func XlsxToJSON(r io.ReaderAt, size int64, opts Options) (string, error) {
	model, err := xlsx.ParseWorkbookModel(r, size, opts.core())
	if err != nil {
		return "", err
	}
	return xlsx.RenderWorkbookJSON(model, opts.Indent)
}

// Convert is the whole contract offered to a surrounding service: workbook
// bytes in, JSON text out. A failure of the whole conversion comes back as
// {"error": <message>} instead of a partial document.
func Convert(data []byte, opts Options) string {
	out, err := XlsxToJSON(bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.WithError(err).Warn("conversion failed")
		}
		return ErrorJSON(err)
	}
	return out
}
