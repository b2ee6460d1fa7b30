package service

import (
	"migel-service/internal/migel/model"
)

// scored is one candidate entry for one product in one language.
type scored struct {
	entry   int
	lang    model.Language
	score   float64
	matched int
	maxLen  int
}

// collected evidence for one candidate entry, keyed by catalog keyword.
type evidence struct {
	primary   map[string]int
	secondary map[string]int
}

// scoreLanguage scores every catalog entry touched by any of the product's
// words. Score = distinct matched catalog keywords ÷ distinct product words;
// secondary matches are gated on at least one primary match of the same
// entry. maxLen carries the longest counted keyword as a specificity proxy.
func scoreLanguage(ix *Index, lang model.Language, words []string) []scored {
	if len(words) == 0 {
		return nil
	}
	li := ix.byLang[lang]
	if li == nil {
		return nil
	}

	cands := make(map[int]*evidence)
	for _, w := range words {
		for _, m := range li.resolve(w, lang) {
			for _, p := range m.postings {
				ev := cands[p.entry]
				if ev == nil {
					ev = &evidence{primary: map[string]int{}, secondary: map[string]int{}}
					cands[p.entry] = ev
				}
				if p.class == model.Primary {
					ev.primary[m.kw] = runeLen(m.kw)
				} else {
					ev.secondary[m.kw] = runeLen(m.kw)
				}
			}
		}
	}

	out := make([]scored, 0, len(cands))
	for entry, ev := range cands {
		// gating: entries reached only through secondary keywords are out
		if len(ev.primary) == 0 {
			continue
		}
		matched := len(ev.primary) + len(ev.secondary)
		maxLen := 0
		for _, l := range ev.primary {
			maxLen = max(maxLen, l)
		}
		for _, l := range ev.secondary {
			maxLen = max(maxLen, l)
		}
		out = append(out, scored{
			entry:   entry,
			lang:    lang,
			score:   float64(matched) / float64(len(words)),
			matched: matched,
			maxLen:  maxLen,
		})
	}
	return out
}
