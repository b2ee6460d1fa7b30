package service

import (
	"strings"

	"migel-service/internal/migel/model"
)

// Secondary keywords shorter than this are discarded: short words from
// limitation/chapter text explained too little and caused false positives.
const minSecondaryLen = 8

// extractKeywords turns one catalog entry into its keyword set for one
// language. The first description line yields primary keywords; the remaining
// lines, the limitation text and the chapter path yield secondary ones.
// Deduplicated, first-seen order, primary classification wins on collision.
// An entry without text in the language yields nil.
func extractKeywords(e *model.CatalogEntry, lang model.Language, stop *StopWords) []model.Keyword {
	label := e.Bezeichnung.Get(lang)
	lines := splitLines(label)

	var kws []model.Keyword
	seen := make(map[string]struct{})

	add := func(text string, class model.KeywordClass) {
		for _, w := range normalizeWords(text, lang, stop) {
			if class == model.Secondary && runeLen(w) < minSecondaryLen {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			kws = append(kws, model.Keyword{Text: w, Class: class})
		}
	}

	if len(lines) > 0 {
		add(lines[0], model.Primary)
		for _, line := range lines[1:] {
			add(line, model.Secondary)
		}
	}
	add(e.Limitation.Get(lang), model.Secondary)
	add(e.Category.Get(lang), model.Secondary)

	return kws
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	out := raw[:0]
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
