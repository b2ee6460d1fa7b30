package service

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"migel-service/internal/migel/model"
)

// Matcher holds the read-only index and stop-word sets. Safe for concurrent
// use once built; nothing is mutated after New.
type Matcher struct {
	ix      *Index
	stop    *StopWords
	workers int
}

func NewMatcher(entries []model.CatalogEntry, stop *StopWords, workers int) *Matcher {
	if stop == nil {
		stop = DefaultStopWords()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Matcher{
		ix:      BuildIndex(entries, stop),
		stop:    stop,
		workers: workers,
	}
}

// Keywords reports the distinct indexed keyword count, for log lines.
func (m *Matcher) Keywords() int { return m.ix.Keywords() }

// Entries reports the catalog size.
func (m *Matcher) Entries() int { return len(m.ix.entries) }

// Match runs the full decision for one product: score per language, apply the
// thresholds, take the single best candidate across languages. Degenerate
// input (no text, no overlap) yields an unmatched result, never an error.
func (m *Matcher) Match(p model.ProductRow) model.MatchResult {
	var (
		best  scored
		found bool
	)
	for _, lang := range model.Languages {
		text := p.Desc.Get(lang)
		// the brand is language-agnostic extra text on every side
		if b := strings.TrimSpace(p.Brand); b != "" {
			text += " " + b
		}
		words := normalizeWords(text, lang, m.stop)
		for _, c := range scoreLanguage(m.ix, lang, words) {
			if !accept(c) {
				continue
			}
			if !found || better(m.ix, c, best) {
				best, found = c, true
			}
		}
	}
	if !found {
		return model.MatchResult{ProductID: p.ID}
	}
	e := &m.ix.entries[best.entry]
	return model.MatchResult{
		ProductID:   p.ID,
		Matched:     true,
		PositionNr:  e.PositionNr,
		Bezeichnung: e.Bezeichnung.Get(best.lang),
		Limitation:  e.Limitation.Get(best.lang),
		Language:    best.lang,
		Score:       best.score,
		Keywords:    best.matched,
	}
}

// MatchAll fans Match out over a bounded worker pool. Each worker writes only
// its own result slot; the index is the sole shared object and is never
// written, so no further synchronisation is needed. Output order mirrors
// input order.
func (m *Matcher) MatchAll(ctx context.Context, products []model.ProductRow) []model.MatchResult {
	results := make([]model.MatchResult, len(products))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i := range products {
		g.Go(func() error {
			results[i] = m.Match(products[i])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return results
}

// Matched counts the confident results in rs.
func Matched(rs []model.MatchResult) int {
	n := 0
	for i := range rs {
		if rs[i].Matched {
			n++
		}
	}
	return n
}
