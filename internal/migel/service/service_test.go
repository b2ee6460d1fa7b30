package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"migel-service/internal/migel/model"
)

func productDE(id, text string) model.ProductRow {
	return model.ProductRow{ID: id, Desc: model.LangText{DE: text}}
}

func TestSingleKeywordTooShort(t *testing.T) {
	// perfect score, but a lone 9-rune keyword is not specific enough
	m := NewMatcher([]model.CatalogEntry{
		entryDE("02.01.01.00.1", "Blutdruck", ""),
	}, nil, 1)

	res := m.Match(productDE("p1", "Blutdruck"))
	assert.False(t, res.Matched)
}

func TestSingleKeywordAtThreshold(t *testing.T) {
	// 10-rune keyword, half the product vocabulary explained: both limits hit exactly
	m := NewMatcher([]model.CatalogEntry{
		entryDE("35.01.01.00.1", "Kompressen", ""),
	}, nil, 1)

	res := m.Match(productDE("p1", "Kompressen Zellstoff"))
	require.True(t, res.Matched)
	assert.Equal(t, "35.01.01.00.1", res.PositionNr)
	assert.Equal(t, 0.5, res.Score)
	assert.Equal(t, 1, res.Keywords)
}

func TestTwoKeywordsBelowScore(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("34.01.01.00.1", "Wundgaze Fixierbinde", ""),
	}, nil, 1)

	// 2 of 7 words explained: 0.286 < 0.3
	res := m.Match(productDE("p1", "Wundgaze Fixierbinde alpha beta gamma delta omega"))
	assert.False(t, res.Matched)
}

func TestTwoKeywordsAtThreshold(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("34.02.01.00.1", "Netzhose Verband Binde", ""),
	}, nil, 1)

	// 3 of 10 words explained, longest keyword 8 runes
	res := m.Match(productDE("p1",
		"Netzhose Verband Binde alpha beta gamma delta omega sigma kappa"))
	require.True(t, res.Matched)
	assert.Equal(t, 0.3, res.Score)
	assert.Equal(t, 3, res.Keywords)
}

func TestTwoKeywordsAllShort(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("34.03.01.00.1", "Gaze Watte", ""),
	}, nil, 1)

	// score 0.5 but the longest matched keyword has only 5 runes
	res := m.Match(productDE("p1", "Gaze Watte alpha beta"))
	assert.False(t, res.Matched)
}

func TestSecondaryGating(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("14.10.01.00.1", "Inhalator\nVerneblermaske Kompressorbetrieb", ""),
	}, nil, 1)

	// only secondary keywords match: never selected, whatever the score
	res := m.Match(productDE("p1", "Verneblermaske Kompressorbetrieb"))
	assert.False(t, res.Matched)

	// one primary match unlocks the secondary evidence
	res = m.Match(productDE("p2", "Inhalator Verneblermaske"))
	require.True(t, res.Matched)
	assert.Equal(t, 2, res.Keywords)
}

func TestLanguageIsolation(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("01.01.01.00.1", "Verweilkatheter", ""),
	}, nil, 1)

	// French product text never reaches German catalog keywords
	res := m.Match(model.ProductRow{ID: "p1", Desc: model.LangText{FR: "Verweilkatheter"}})
	assert.False(t, res.Matched)
}

func TestStopWordOverlapOnly(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("35.02.01.00.1", "Kompressen steril", ""),
	}, nil, 1)

	// the only shared word is a stop word
	res := m.Match(productDE("p1", "Tupfer steril"))
	assert.False(t, res.Matched)
}

func TestBrandFoldedIntoEveryLanguage(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("01.01.01.00.1", "Verweilkatheter", ""),
	}, nil, 1)

	res := m.Match(model.ProductRow{ID: "p1", Brand: "Verweilkatheter"})
	assert.True(t, res.Matched)
}

func TestMatchVerweilkatheter(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("01.01.01", "Verweilkatheter", "nur bei Dauerkatheterisierung"),
	}, nil, 1)

	res := m.Match(productDE("p1", "Verweilkatheter 16Ch steril"))
	require.True(t, res.Matched)
	assert.Equal(t, "01.01.01", res.PositionNr)
	assert.Equal(t, "Verweilkatheter", res.Bezeichnung)
	assert.Equal(t, "nur bei Dauerkatheterisierung", res.Limitation)
	assert.Equal(t, model.DE, res.Language)
	assert.GreaterOrEqual(t, res.Score, 0.5)

	res = m.Match(productDE("p2", "Einweghandschuhe Latex"))
	assert.False(t, res.Matched)
}

func TestTieBreakLowerPosition(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("14.01.02.00.1", "Krankenheber fahrbar", ""),
		entryDE("14.01.01.00.1", "Krankenheber fahrbar", ""),
	}, nil, 1)

	res := m.Match(productDE("p1", "Krankenheber fahrbar"))
	require.True(t, res.Matched)
	assert.Equal(t, "14.01.01.00.1", res.PositionNr)
}

func TestMatchAllDeterministic(t *testing.T) {
	entries := []model.CatalogEntry{
		entryDE("01.01.01.00.1", "Verweilkatheter", "nur bei Dauerkatheterisierung"),
		entryDE("29.01.01.00.1", "Blasensonde Silikondauerkatheter", ""),
		entryDE("35.01.01.00.1", "Kompressen", ""),
	}
	m := NewMatcher(entries, nil, 4)

	products := []model.ProductRow{
		productDE("p1", "Verweilkatheter 16Ch steril"),
		productDE("p2", "Einweghandschuhe Latex"),
		productDE("p3", "Kompressen Zellstoff"),
		productDE("p4", "Blasensonde Silikondauerkatheter Ballon"),
		productDE("p5", ""),
	}

	first := m.MatchAll(context.Background(), products)
	require.Len(t, first, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, first[i].ProductID)
	}

	// worker scheduling must not leak into the output
	for range 10 {
		assert.Equal(t, first, m.MatchAll(context.Background(), products))
	}
	assert.Equal(t, 3, Matched(first))
}

func TestEmptyProductIsNotAnError(t *testing.T) {
	m := NewMatcher([]model.CatalogEntry{
		entryDE("01.01.01.00.1", "Verweilkatheter", ""),
	}, nil, 2)

	res := m.MatchAll(context.Background(), []model.ProductRow{{ID: "x"}})
	require.Len(t, res, 1)
	assert.False(t, res[0].Matched)
	assert.Equal(t, "x", res[0].ProductID)
}
