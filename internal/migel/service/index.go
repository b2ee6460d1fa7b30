package service

import (
	"strings"

	"migel-service/internal/migel/model"
)

// posting — one (entry, classification) pair for a keyword.
type posting struct {
	entry int
	class model.KeywordClass
}

// suffixKey width. Must stay ≤ 5 so a five-letter keyword like "sonde" is
// still reachable from a compound ("blasensonde"); 4 keeps buckets small.
const suffixN = 4

// Keywords below this length never participate in compound containment —
// they would turn the suffix buckets into noise.
const minCompoundLen = 4

// Light German inflection endings, longest first.
var deSuffixStrips = [...]string{"en", "er", "e", "n", "s"}

// langIndex is the inverted index for one language: exact word → postings,
// plus (German only) trailing-runes → candidate catalog keywords for the
// compound fallback.
type langIndex struct {
	words  map[string][]posting
	suffix map[string][]string
}

// Index maps normalized keywords to catalog entries, one sub-index per
// language. Built once from the full catalog and read-only afterwards; it is
// the only object shared between matching workers.
type Index struct {
	entries []model.CatalogEntry
	byLang  map[model.Language]*langIndex
	kwCount int
}

func BuildIndex(entries []model.CatalogEntry, stop *StopWords) *Index {
	ix := &Index{
		entries: entries,
		byLang:  make(map[model.Language]*langIndex, len(model.Languages)),
	}
	distinct := make(map[string]struct{})

	for _, lang := range model.Languages {
		li := &langIndex{words: make(map[string][]posting)}
		if lang == model.DE {
			li.suffix = make(map[string][]string)
		}
		for i := range entries {
			for _, kw := range extractKeywords(&entries[i], lang, stop) {
				_, known := li.words[kw.Text]
				li.words[kw.Text] = append(li.words[kw.Text], posting{entry: i, class: kw.Class})
				distinct[kw.Text] = struct{}{}
				if known || li.suffix == nil || runeLen(kw.Text) < minCompoundLen {
					continue
				}
				key := lastRunes(kw.Text, suffixN)
				li.suffix[key] = append(li.suffix[key], kw.Text)
			}
		}
		ix.byLang[lang] = li
	}
	ix.kwCount = len(distinct)
	return ix
}

// Entries returns the catalog the index was built over.
func (ix *Index) Entries() []model.CatalogEntry { return ix.entries }

// Keywords returns the number of distinct indexed keywords across languages.
func (ix *Index) Keywords() int { return ix.kwCount }

// wordMatch — a product word resolved to one catalog keyword.
type wordMatch struct {
	kw       string
	postings []posting
}

// resolve maps one product word to the catalog keywords it matches under the
// language's rule: exact equality for FR/IT; for DE, exact first, then the
// compound/inflection fallback.
func (li *langIndex) resolve(word string, lang model.Language) []wordMatch {
	if ps, ok := li.words[word]; ok {
		return []wordMatch{{kw: word, postings: ps}}
	}
	if lang != model.DE {
		return nil
	}
	return li.resolveCompound(word)
}

// resolveCompound handles German compounding and light inflection. Candidate
// catalog keywords are narrowed via the suffix index, then checked for
// suffix containment in either direction: "katheter" inside
// "verweilkatheter", or the product word sitting at the tail of a longer
// catalog keyword. Inflected forms (trailing e/en/er/n/s stripped) are
// retried through both the exact and the containment path.
func (li *langIndex) resolveCompound(word string) []wordMatch {
	bases := inflectionBases(word)

	var out []wordMatch
	taken := make(map[string]struct{})
	add := func(kw string) {
		if _, dup := taken[kw]; dup {
			return
		}
		taken[kw] = struct{}{}
		out = append(out, wordMatch{kw: kw, postings: li.words[kw]})
	}

	for _, base := range bases {
		// exact retry for stripped forms
		if base != word {
			if _, ok := li.words[base]; ok {
				add(base)
			}
		}
		if runeLen(base) < minCompoundLen {
			continue
		}
		for _, kw := range li.suffix[lastRunes(base, suffixN)] {
			if strings.HasSuffix(base, kw) || strings.HasSuffix(kw, base) {
				add(kw)
			}
		}
	}
	return out
}

// inflectionBases returns the word plus its suffix-stripped variants, word
// first. A strip only applies when enough of a stem remains.
func inflectionBases(word string) []string {
	bases := []string{word}
	for _, suf := range deSuffixStrips {
		if !strings.HasSuffix(word, suf) {
			continue
		}
		stem := word[:len(word)-len(suf)]
		if runeLen(stem) < minTokenLen {
			continue
		}
		bases = append(bases, stem)
	}
	return bases
}
