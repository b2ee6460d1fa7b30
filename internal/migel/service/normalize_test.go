package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"migel-service/internal/migel/model"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "creme sterile", fold("Crème Stérile"))
	assert.Equal(t, "grosse", fold("Größe"))
	assert.Equal(t, "denomination", fold("Dénomination"))
	assert.Equal(t, "", fold(""))
}

func TestTokenize(t *testing.T) {
	// digits and punctuation separate tokens
	assert.Equal(t, []string{"verweilkatheter", "ch", "steril"},
		tokenize(fold("Verweilkatheter 16Ch, steril")))
	assert.Empty(t, tokenize("16 - 20"))
}

func TestNormalizeWords(t *testing.T) {
	stop := DefaultStopWords()

	// "16Ch" leaves a two-letter fragment, "steril" is a stop word
	words := normalizeWords("Verweilkatheter 16Ch steril", model.DE, stop)
	assert.Equal(t, []string{"verweilkatheter"}, words)

	// dedupe keeps first-seen order
	words = normalizeWords("Sonde Ballon sonde SONDE", model.DE, stop)
	assert.Equal(t, []string{"sonde", "ballon"}, words)

	assert.Nil(t, normalizeWords("", model.FR, stop))
}

func TestLastRunes(t *testing.T) {
	assert.Equal(t, "onde", lastRunes("blasensonde", 4))
	assert.Equal(t, "ab", lastRunes("ab", 4))
	assert.Equal(t, "онде", lastRunes("зонде", 4)) // rune-aware, not byte-aware
}
