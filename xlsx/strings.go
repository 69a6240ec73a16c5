package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

const sharedStringsPart = "xl/sharedStrings.xml"

// sharedStrings is the string table of a workbook as stored in its container.
// The reader resolves the table only through relative relationship targets,
// so workbooks pointing at "/xl/sharedStrings.xml" come back without one.
type sharedStrings []string

// loadSharedStrings decodes the shared string part straight from the
// container. It returns nil when the part is missing or unreadable.
func loadSharedStrings(r io.ReaderAt, size int64) sharedStrings {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil
	}
	f := findPart(z, sharedStringsPart)
	if f == nil {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	sst := sml.NewSst()
	if err := xml.NewDecoder(rc).Decode(sst); err != nil {
		return nil
	}
	table := make(sharedStrings, len(sst.Si))
	for i, si := range sst.Si {
		table[i] = richText(si)
	}
	return table
}

func richText(si *sml.CT_Rst) string {
	if si == nil {
		return ""
	}
	if si.T != nil {
		return *si.T
	}
	var b strings.Builder
	for _, run := range si.R {
		if run != nil {
			b.WriteString(run.T)
		}
	}
	return b.String()
}

// lookup returns the entry referenced by a cell's raw value.
func (t sharedStrings) lookup(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	i, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil || i < 0 || i >= len(t) {
		return "", false
	}
	return t[i], true
}

// findPart looks a part up by name, accepting a leading slash and falling
// back to any part with the same base name under xl/.
func findPart(z *zip.Reader, name string) *zip.File {
	base := name[strings.LastIndex(name, "/"):]
	var fallback *zip.File
	for _, f := range z.File {
		n := strings.TrimPrefix(f.Name, "/")
		if n == name {
			return f
		}
		if fallback == nil && strings.HasPrefix(n, "xl/") && strings.HasSuffix(n, base) {
			fallback = f
		}
	}
	return fallback
}
