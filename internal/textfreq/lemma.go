package textfreq

import "strings"

// Irregular noun plurals that the suffix rules cannot reach.
var lemmaExceptions = map[string]string{
	"men":        "man",
	"women":      "woman",
	"children":   "child",
	"feet":       "foot",
	"teeth":      "tooth",
	"geese":      "goose",
	"mice":       "mouse",
	"lice":       "louse",
	"criteria":   "criterion",
	"analyses":   "analysis",
	"diagnoses":  "diagnosis",
	"hypotheses": "hypothesis",
	"bacteria":   "bacterium",
	"fungi":      "fungus",
	"nuclei":     "nucleus",
	"stimuli":    "stimulus",
	"viruses":    "virus",
	"statuses":   "status",
	"gases":      "gas",
	"buses":      "bus",
	// f-plurals; a blanket ves->f rule would mangle -ves verbs
	// ("moves", "improves"), so the known nouns are listed instead.
	"leaves":  "leaf",
	"knives":  "knife",
	"wives":   "wife",
	"lives":   "life",
	"halves":  "half",
	"selves":  "self",
	"shelves": "shelf",
	"calves":  "calf",
	"wolves":  "wolf",
	"loaves":  "loaf",
	"thieves": "thief",
	"hooves":  "hoof",
}

// Ordered longest-suffix-first, mirroring the WordNet noun
// detachment rules.
var lemmaRules = []struct {
	suffix  string
	replace string
}{
	{"ches", "ch"},
	{"shes", "sh"},
	{"sses", "ss"},
	{"xes", "x"},
	{"zes", "z"},
	{"ies", "y"},
	{"s", ""},
}

// Lemma reduces an English noun to its base form by suffix detachment.
// Tokens the rules do not recognize pass through unchanged; the input is
// expected to be lower-cased already.
func Lemma(tok string) string {
	if base, ok := lemmaExceptions[tok]; ok {
		return base
	}
	for _, rule := range lemmaRules {
		if !strings.HasSuffix(tok, rule.suffix) {
			continue
		}
		base := tok[:len(tok)-len(rule.suffix)] + rule.replace
		// The bare -s rule must not fire on -ss/-us/-is words
		// ("class", "virus", "pelvis" are singular).
		if rule.suffix == "s" {
			if len(base) < 3 || strings.HasSuffix(tok, "ss") ||
				strings.HasSuffix(tok, "us") || strings.HasSuffix(tok, "is") {
				return tok
			}
		}
		if len(base) < 2 {
			return tok
		}
		return base
	}
	return tok
}
