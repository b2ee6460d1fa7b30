package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowsCommaCSV(t *testing.T) {
	data := "GTIN,Description,Brand\n761234,Verweilkatheter,Acme\n"
	rows, err := ReadRows(strings.NewReader(data), "firstbase.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"GTIN", "Description", "Brand"}, rows[0])
	assert.Equal(t, []string{"761234", "Verweilkatheter", "Acme"}, rows[1])
}

func TestReadRowsSniffsSemicolon(t *testing.T) {
	data := "GTIN;Description;Brand\n761234;Verweilkatheter;Acme\n"
	rows, err := ReadRows(strings.NewReader(data), "export.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Verweilkatheter", rows[1][1])
}

func TestReadRowsKeepsCellNewlines(t *testing.T) {
	data := "a,b\n\"Verweilkatheter\r\naus Silikon\",x\n"
	rows, err := ReadRows(strings.NewReader(data), "t.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Verweilkatheter\naus Silikon", rows[1][0])
}

func TestReadSheetsUnsupported(t *testing.T) {
	_, err := ReadSheets(strings.NewReader(""), "notes.txt")
	assert.Error(t, err)
}
