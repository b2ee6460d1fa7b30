package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	headers := []string{"GTIN", "Description (DE)", "migel_code"}
	rows := [][]string{
		{"7612345000961", "Verweilkatheter 16Ch", "01.01.01.00.1"},
		{"7612345000962", "Kompressen"}, // short row padded with empties
	}

	require.NoError(t, WriteTable(path, headers, rows))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM data`).Scan(&n))
	assert.Equal(t, 2, n)

	// header punctuation sanitized into column names
	var gtin, desc, code string
	require.NoError(t, db.QueryRow(
		`SELECT "GTIN", "Description__DE_", "migel_code" FROM data ORDER BY "GTIN"`,
	).Scan(&gtin, &desc, &code))
	assert.Equal(t, "7612345000961", gtin)
	assert.Equal(t, "Verweilkatheter 16Ch", desc)
	assert.Equal(t, "01.01.01.00.1", code)

	require.NoError(t, db.QueryRow(
		`SELECT "migel_code" FROM data WHERE "GTIN" = '7612345000962'`,
	).Scan(&code))
	assert.Equal(t, "", code)
}

func TestWriteTableOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, WriteTable(path, []string{"a"}, [][]string{{"1"}, {"2"}}))
	require.NoError(t, WriteTable(path, []string{"a"}, [][]string{{"3"}}))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM data`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWriteTableNoHeaders(t *testing.T) {
	assert.Error(t, WriteTable(filepath.Join(t.TempDir(), "x.db"), nil, nil))
}
