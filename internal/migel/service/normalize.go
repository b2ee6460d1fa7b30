package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"migel-service/internal/migel/model"
)

// NFD → drop combining marks → NFC: ü→u, é→e, à→a. Keeps matching stable
// across the mixed encodings the source files arrive in.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokens shorter than this carry no signal ("Ch", "mm", "ml").
const minTokenLen = 3

// fold lowercases and transliterates accented letters to their base form.
// ß→ss happens before deaccenting so both sides of a comparison agree.
func fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ß", "ss")
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	return s
}

// tokenize splits folded text into maximal letter runs. Digits and
// punctuation act as separators ("16Ch" → "ch").
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}

// normalizeWords — the shared pipeline for both the catalog and product side:
// fold, tokenize, drop short tokens and stop words, dedupe keeping first-seen
// order. Pure; safe from any number of goroutines.
func normalizeWords(text string, lang model.Language, stop *StopWords) []string {
	raw := tokenize(fold(text))
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, w := range raw {
		if utf8.RuneCountInString(w) < minTokenLen {
			continue
		}
		if stop.Is(lang, w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// lastRunes returns the trailing n runes of s (s itself when shorter).
func lastRunes(s string, n int) string {
	cnt := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		cnt++
		if cnt == n {
			return s[i:]
		}
	}
	return s
}
