package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"migel-service/internal/migel/model"
)

func kwStrings(ms []wordMatch) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.kw)
	}
	return out
}

func TestResolveGermanCompound(t *testing.T) {
	ix := BuildIndex([]model.CatalogEntry{
		entryDE("29.01.01.00.1", "Sonde", ""),
	}, DefaultStopWords())
	li := ix.byLang[model.DE]

	// catalog keyword at the tail of a compound product word
	ms := li.resolve("blasensonde", model.DE)
	assert.Equal(t, []string{"sonde"}, kwStrings(ms))

	// no containment, no match
	assert.Empty(t, li.resolve("einweghandschuhe", model.DE))
}

func TestResolveGermanInflection(t *testing.T) {
	ix := BuildIndex([]model.CatalogEntry{
		entryDE("01.01.01.00.1", "Katheter", ""),
	}, DefaultStopWords())
	li := ix.byLang[model.DE]

	// trailing "s" stripped, then exact
	ms := li.resolve("katheters", model.DE)
	assert.Equal(t, []string{"katheter"}, kwStrings(ms))
}

func TestResolveProductWordInsideLongerKeyword(t *testing.T) {
	ix := BuildIndex([]model.CatalogEntry{
		entryDE("29.02.01.00.1", "Blasensonde", ""),
	}, DefaultStopWords())
	li := ix.byLang[model.DE]

	ms := li.resolve("sonde", model.DE)
	assert.Equal(t, []string{"blasensonde"}, kwStrings(ms))
}

func TestResolveFrenchIsExactOnly(t *testing.T) {
	e := model.CatalogEntry{
		PositionNr:  "29.01.01.00.1",
		Bezeichnung: model.LangText{FR: "Sonde"},
	}
	ix := BuildIndex([]model.CatalogEntry{e}, DefaultStopWords())
	li := ix.byLang[model.FR]

	require.NotEmpty(t, li.resolve("sonde", model.FR))
	assert.Empty(t, li.resolve("sondeexterne", model.FR))
	assert.Empty(t, li.resolve("sondes", model.FR))
}

func TestIndexAbsentLanguage(t *testing.T) {
	ix := BuildIndex([]model.CatalogEntry{
		entryDE("01.01.01.00.1", "Katheter", ""),
	}, DefaultStopWords())

	// entry has no French text: absent from the French index entirely
	assert.Empty(t, ix.byLang[model.FR].words)
}
