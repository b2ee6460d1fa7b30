package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sheet is one worksheet (or the whole CSV) as raw cells. Cell text keeps
// embedded newlines: multi-line description cells are meaningful upstream.
type Sheet struct {
	Name string
	Rows [][]string
}

// ReadSheets picks a parser by extension and returns every sheet. CSV counts
// as a single unnamed sheet.
func ReadSheets(r io.Reader, filename string) ([]Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		rows, err := readCSV(r)
		if err != nil {
			return nil, err
		}
		return []Sheet{{Rows: rows}}, nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// ReadRows returns the first sheet's rows; the common case for product
// tables.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	sheets, err := ReadSheets(r, filename)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, nil
	}
	return sheets[0].Rows, nil
}

var cellReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	" ", " ", // NBSP
	" ", " ", // narrow NBSP
)

// normalizeCell cleans one cell without destroying line structure.
func normalizeCell(s string) string {
	return strings.TrimSpace(cellReplacer.Replace(s))
}
