package sheetjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aerissecure/sheetjson/xlsx"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"
)

func sampleWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetCellValue("Sheet1", "A1", "Hello"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "B2", 1.5); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestXlsxToJSON(t *testing.T) {
	data := sampleWorkbook(t)
	out, err := XlsxToJSON(bytes.NewReader(data), int64(len(data)), Options{})
	if err != nil {
		t.Fatalf("XlsxToJSON failed: %v", err)
	}

	var doc xlsx.WorkbookModel
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(doc.Sheets) != 1 || len(doc.Sheets[0].Lines) != 2 {
		t.Fatalf("unexpected document: %s", out)
	}
	if got := doc.Sheets[0].Lines[0].Columns; len(got) != 1 || got[0].ColNumber != "A" || got[0].Value != "Hello" {
		t.Fatalf("line 1 = %+v", got)
	}
	if got := doc.Sheets[0].Lines[1].Columns[0]; got.ColNumber != "B" || got.Value != 1.5 {
		t.Fatalf("B2 = %+v", got)
	}
}

func TestXlsxToJSONIndent(t *testing.T) {
	data := sampleWorkbook(t)
	compact, err := XlsxToJSON(bytes.NewReader(data), int64(len(data)), Options{})
	if err != nil {
		t.Fatal(err)
	}
	indented, err := XlsxToJSON(bytes.NewReader(data), int64(len(data)), Options{Indent: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(compact, "\n") || !strings.Contains(indented, "\n  ") {
		t.Fatalf("indent not applied:\n%s\n%s", compact, indented)
	}

	var a, b any
	_ = json.Unmarshal([]byte(compact), &a)
	_ = json.Unmarshal([]byte(indented), &b)
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if !bytes.Equal(ja, jb) {
		t.Fatal("indented document differs from the compact one")
	}
}

func TestConvertErrorDocument(t *testing.T) {
	logger, hook := test.NewNullLogger()
	out := Convert([]byte("definitely not a workbook"), Options{Logger: logger})

	var doc ErrorDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !strings.Contains(doc.Error, "workbook unreadable") {
		t.Fatalf("error = %q", doc.Error)
	}
	if strings.Contains(out, "sheets") {
		t.Fatalf("partial document returned: %s", out)
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %+v", e)
	}
}

func TestConvertMatchesXlsxToJSON(t *testing.T) {
	data := sampleWorkbook(t)
	want, err := XlsxToJSON(bytes.NewReader(data), int64(len(data)), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := Convert(data, Options{}); got != want {
		t.Fatalf("Convert = %s, want %s", got, want)
	}
}

func TestErrorJSON(t *testing.T) {
	got := ErrorJSON(errors.New(`bad "quote" <tag>`))
	if got != `{"error":"bad \"quote\" <tag>"}` {
		t.Fatalf("ErrorJSON = %s", got)
	}
}
