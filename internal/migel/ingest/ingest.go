// Package ingest maps raw parsed tables onto the matcher's records: the
// MiGeL workbook (one sheet per language) onto CatalogEntry values and the
// firstbase CSV onto ProductRow values.
package ingest

import (
	"regexp"
	"sort"
	"strings"

	"migel-service/internal/fileio"
	"migel-service/internal/migel/model"
)

// A full position number has at least chapter.group.position, e.g.
// "01.01.01.00.1". Rows with shorter numbers are chapter headings.
var rePosition = regexp.MustCompile(`^\d{2}(\.\d{2}){2,}[\d.]*$`)

// headerWords per concern and language; matched against normalized headers.
var (
	posHeaders  = []string{"positions", "position", "pos nr", "migel nr", "no de position", "no di posizione"}
	descHeaders = []string{"bezeichnung", "denomination", "nomination", "designation", "denominazione", "descrizione"}
	limHeaders  = []string{"limitation", "limitazione"}
)

type columns struct {
	pos, desc, lim int
}

// Catalog converts the parsed MiGeL workbook into catalog entries, merging
// the per-language sheets by position number. Sheets where no header row can
// be located (title pages, legal notes) are skipped.
func Catalog(sheets []fileio.Sheet) []model.CatalogEntry {
	byPos := make(map[string]*model.CatalogEntry)

	// language falls back to order among data sheets, so a leading table of
	// contents does not shift DE/FR/IT assignment
	dataIdx := 0
	for _, sheet := range sheets {
		hdrIdx, cols, ok := locateHeader(sheet.Rows)
		if !ok {
			continue
		}
		lang, ok := sheetLanguage(sheet.Name, dataIdx)
		dataIdx++
		if !ok {
			continue
		}

		category := "" // current chapter path, carried down to its positions
		for _, row := range sheet.Rows[hdrIdx+1:] {
			pos := cell(row, cols.pos)
			desc := cell(row, cols.desc)
			if pos == "" {
				continue
			}
			if !rePosition.MatchString(pos) {
				// chapter heading; its text becomes descriptive context
				if desc != "" {
					category = pos + " " + strings.ReplaceAll(desc, "\n", " ")
				}
				continue
			}
			if desc == "" {
				continue
			}
			e := byPos[pos]
			if e == nil {
				e = &model.CatalogEntry{PositionNr: pos}
				byPos[pos] = e
			}
			e.Bezeichnung.Set(lang, desc)
			e.Limitation.Set(lang, cell(row, cols.lim))
			e.Category.Set(lang, category)
		}
	}

	out := make([]model.CatalogEntry, 0, len(byPos))
	for _, e := range byPos {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PositionNr < out[j].PositionNr })
	return out
}

// Products converts positional CSV rows (header first) into product records.
// Returns the header row alongside, trimmed to the mapped width.
func Products(rows [][]string, m model.ProductMapping) ([]string, []model.ProductRow) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := clip(rows[0], m.MaxCols)
	products := make([]model.ProductRow, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := clip(raw, m.MaxCols)
		p := model.ProductRow{
			ID:    cell(row, m.IDCol),
			Row:   row,
			Brand: cell(row, m.BrandCol),
		}
		p.Desc.DE = cell(row, m.DescDECol)
		p.Desc.FR = cell(row, m.DescFRCol)
		p.Desc.IT = cell(row, m.DescITCol)
		products = append(products, p)
	}
	return header, products
}

// sheetLanguage from the sheet name, falling back to sheet order DE/FR/IT.
func sheetLanguage(name string, idx int) (model.Language, bool) {
	n := normHeader(name)
	switch {
	case strings.Contains(n, "deutsch") || n == "de" || strings.HasSuffix(n, " de"):
		return model.DE, true
	case strings.Contains(n, "franc") || n == "fr" || strings.HasSuffix(n, " fr"):
		return model.FR, true
	case strings.Contains(n, "ital") || n == "it" || strings.HasSuffix(n, " it"):
		return model.IT, true
	}
	if idx < len(model.Languages) {
		return model.Languages[idx], true
	}
	return 0, false
}

// locateHeader scans the top of a sheet for the row naming the position and
// description columns.
func locateHeader(rows [][]string) (int, columns, bool) {
	const scanMax = 12
	for i := 0; i < len(rows) && i < scanMax; i++ {
		cols := columns{pos: -1, desc: -1, lim: -1}
		for j, h := range rows[i] {
			n := normHeader(h)
			if n == "" {
				continue
			}
			switch {
			case cols.pos < 0 && matchesAny(n, posHeaders):
				cols.pos = j
			case cols.desc < 0 && matchesAny(n, descHeaders):
				cols.desc = j
			case cols.lim < 0 && matchesAny(n, limHeaders):
				cols.lim = j
			}
		}
		if cols.pos >= 0 && cols.desc >= 0 {
			return i, cols, true
		}
	}
	return 0, columns{}, false
}

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeader: lowercase, punctuation to single spaces. "Positions-Nummer" →
// "positions nummer".
func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

func matchesAny(norm string, wants []string) bool {
	for _, w := range wants {
		if strings.Contains(norm, w) {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// clip pads or truncates a row to width n.
func clip(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}
