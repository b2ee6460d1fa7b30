package model

import "fmt"

// Language of a description field. The MiGeL list carries German, French and
// Italian text; matching never crosses languages.
type Language int

const (
	DE Language = iota
	FR
	IT
)

// Languages in a fixed order, used wherever all three are walked.
var Languages = [...]Language{DE, FR, IT}

func (l Language) String() string {
	switch l {
	case DE:
		return "de"
	case FR:
		return "fr"
	case IT:
		return "it"
	}
	return fmt.Sprintf("lang(%d)", int(l))
}

func (l Language) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// KeywordClass tags where a keyword came from inside a catalog entry.
type KeywordClass int

const (
	// Primary — from the first line of the entry's description.
	Primary KeywordClass = iota
	// Secondary — from additional description lines, the limitation text or
	// the chapter path. Secondary keywords only count for an entry once a
	// primary keyword of the same entry matched.
	Secondary
)

// Keyword is a derived value: a normalized word with its classification.
type Keyword struct {
	Text  string
	Class KeywordClass
}

// LangText holds one text field per language. Empty string = absent.
type LangText struct {
	DE string
	FR string
	IT string
}

func (t LangText) Get(l Language) string {
	switch l {
	case DE:
		return t.DE
	case FR:
		return t.FR
	case IT:
		return t.IT
	}
	return ""
}

func (t *LangText) Set(l Language, s string) {
	switch l {
	case DE:
		t.DE = s
	case FR:
		t.FR = s
	case IT:
		t.IT = s
	}
}

// CatalogEntry is one MiGeL position. Immutable after loading; the
// description cell may span multiple lines.
type CatalogEntry struct {
	PositionNr  string
	Bezeichnung LangText
	Limitation  LangText
	// Category is the chapter path the position sits under, e.g.
	// "01 Applikationshilfen". Descriptive text only, never an identifier.
	Category LangText
}

// ProductMapping says which positional CSV columns hold what. The firstbase
// export is headerful but positional, so no header resolution is done here.
type ProductMapping struct {
	IDCol     int
	DescDECol int
	DescFRCol int
	DescITCol int
	BrandCol  int
	MaxCols   int
}

// DefaultProductMapping matches the firstbase.csv layout.
func DefaultProductMapping() ProductMapping {
	return ProductMapping{
		IDCol:     0,
		DescDECol: 5,
		DescFRCol: 6,
		DescITCol: 7,
		BrandCol:  8,
		MaxCols:   15,
	}
}

// ProductRow is one product to match. Row keeps the original columns so
// downstream persistence can re-emit them untouched.
type ProductRow struct {
	ID    string
	Row   []string
	Desc  LangText
	Brand string
}

// MatchResult is the outcome for a single product. Unmatched products have
// Matched=false and empty position fields; they are dropped from enriched
// output by the caller, not here.
type MatchResult struct {
	ProductID   string   `json:"product_id"`
	Matched     bool     `json:"matched"`
	PositionNr  string   `json:"migel_code,omitempty"`
	Bezeichnung string   `json:"migel_bezeichnung,omitempty"`
	Limitation  string   `json:"migel_limitation,omitempty"`
	Language    Language `json:"language"`
	Score       float64  `json:"score,omitempty"`
	Keywords    int      `json:"keywords,omitempty"`
}
