package service

// Confidence thresholds. A single-keyword match must be near-total and the
// keyword long enough to be specific; with two or more keywords a lower
// coverage is acceptable but the longest keyword still has to carry weight.
const (
	singleMinScore = 0.5
	singleMinLen   = 10
	multiMinScore  = 0.3
	multiMinLen    = 6
)

func accept(c scored) bool {
	if c.matched <= 1 {
		return c.score >= singleMinScore && c.maxLen >= singleMinLen
	}
	return c.score >= multiMinScore && c.maxLen >= multiMinLen
}

// better reports whether a beats b across languages: higher score, then more
// matched keywords, then the lower position number. The last step is an
// arbitrary but deterministic tie-break.
func better(ix *Index, a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.matched != b.matched {
		return a.matched > b.matched
	}
	return ix.entries[a.entry].PositionNr < ix.entries[b.entry].PositionNr
}
