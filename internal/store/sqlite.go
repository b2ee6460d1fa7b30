// Package store persists result tables into a SQLite file. The schema is
// dynamic: one TEXT column per header, all rows in a single transaction.
package store

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

var reColJunk = regexp.MustCompile(`[^A-Za-z0-9]`)

// WriteTable drops and recreates the "data" table at path and inserts every
// row. Column names are sanitized copies of the headers.
func WriteTable(path string, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return fmt.Errorf("store: no headers")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cols := make([]string, len(headers))
	marks := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = fmt.Sprintf("%q TEXT", reColJunk.ReplaceAllString(h, "_"))
		marks[i] = "?"
	}

	if _, err := tx.Exec(`DROP TABLE IF EXISTS data`); err != nil {
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf(`CREATE TABLE data (%s)`, strings.Join(cols, ", "))); err != nil {
		return err
	}

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO data VALUES (%s)`, strings.Join(marks, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(headers))
	for _, row := range rows {
		for i := range args {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
	}
	return tx.Commit()
}
