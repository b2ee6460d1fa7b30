package service

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"migel-service/internal/migel/model"
)

// Generic terms that recur across unrelated MiGeL chapters and would pull in
// false positives if indexed. All entries are already in folded form
// (lowercase, no accents) because the filter runs after fold().
var defaultStop = map[model.Language][]string{
	model.DE: {
		"und", "mit", "ohne", "fuer", "bei", "aus", "pro", "per",
		"inkl", "exkl", "div", "diverse", "sortiment",
		"stueck", "stk", "set", "paar", "packung", "rolle",
		"gross", "klein", "mittel", "lang", "kurz",
		"weiss", "transparent", "farbig",
		"steril", "unsteril", "einzeln", "latexfrei",
	},
	model.FR: {
		"les", "des", "aux", "pour", "avec", "sans", "par", "sur",
		"incl", "excl", "div", "divers", "assortiment",
		"piece", "pieces", "set", "paire", "emballage", "rouleau",
		"grand", "grande", "petit", "petite", "moyen", "long", "court",
		"blanc", "transparent",
		"sterile", "non",
	},
	model.IT: {
		"dei", "delle", "per", "con", "senza", "tra", "sul",
		"incl", "escl", "div", "diversi", "assortimento",
		"pezzo", "pezzi", "set", "paio", "confezione", "rotolo",
		"grande", "piccolo", "medio", "lungo", "corto",
		"bianco", "trasparente",
		"sterile", "non",
	},
}

// StopWords is built once at startup and read-only afterwards.
type StopWords struct {
	sets map[model.Language]map[string]struct{}
}

func DefaultStopWords() *StopWords {
	sw := &StopWords{sets: make(map[model.Language]map[string]struct{}, len(model.Languages))}
	for _, lang := range model.Languages {
		set := make(map[string]struct{}, len(defaultStop[lang]))
		for _, w := range defaultStop[lang] {
			set[w] = struct{}{}
		}
		sw.sets[lang] = set
	}
	return sw
}

// Is reports whether w should be excluded from keyword/word sets. Applied
// identically on the catalog and product side.
func (sw *StopWords) Is(lang model.Language, w string) bool {
	_, ok := sw.sets[lang][w]
	return ok
}

type stopFile struct {
	DE []string `toml:"de"`
	FR []string `toml:"fr"`
	IT []string `toml:"it"`
}

// LoadStopWords returns the defaults merged with the extra per-language terms
// from a TOML file. An empty path yields plain defaults.
func LoadStopWords(path string) (*StopWords, error) {
	sw := DefaultStopWords()
	if path == "" {
		return sw, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stopwords: %w", err)
	}
	var extra stopFile
	if err := toml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("stopwords %s: %w", path, err)
	}
	merge := func(lang model.Language, words []string) {
		for _, w := range words {
			if f := fold(w); f != "" {
				sw.sets[lang][f] = struct{}{}
			}
		}
	}
	merge(model.DE, extra.DE)
	merge(model.FR, extra.FR)
	merge(model.IT, extra.IT)
	return sw, nil
}
