package sheetjson

import (
	"bytes"
	"encoding/json"

	"github.com/aerissecure/sheetjson/xlsx"
	"github.com/sirupsen/logrus"
)

// Options configures a conversion.
type Options struct {
	// EmptyStreak bounds runs of empty rows and cells (default 50).
	EmptyStreak int
	// Workers is the number of sheets assembled concurrently (default 1).
	Workers int
	// Indent pretty-prints the output.
	Indent bool
	// Logger receives cell-level degradations at debug level.
	Logger logrus.FieldLogger
}

func (o Options) core() xlsx.Options {
	return xlsx.Options{
		EmptyStreak: o.EmptyStreak,
		Workers:     o.Workers,
		Logger:      o.Logger,
	}
}

// ErrorDocument replaces the sheets payload when a conversion fails as a whole.
type ErrorDocument struct {
	Error string `json:"error"`
}

// ErrorJSON renders err as an error document.
func ErrorJSON(err error) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(ErrorDocument{Error: err.Error()})
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
