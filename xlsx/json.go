package xlsx

import (
	"bytes"
	"encoding/json"
)

// RenderWorkbookJSON converts the document tree into its JSON text. Non-ASCII
// text and markup characters are written as is.
func RenderWorkbookJSON(m WorkbookModel, indent bool) (string, error) {
	if m.Sheets == nil {
		m.Sheets = []RenderSheet{}
	}
	return encodeJSON(m, indent)
}

func encodeJSON(v any, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
