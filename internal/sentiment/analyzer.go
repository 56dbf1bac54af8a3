package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// VADER scoring constants: alpha normalizes the raw valence sum into
// [-1,1], negationScalar flips and dampens a negated valence, and
// boosterIncrement is the intensity contribution of a degree modifier.
const (
	normAlpha        = 15.0
	negationScalar   = -0.74
	boosterIncrement = 0.293
)

// contextWindow is how many preceding tokens are inspected for
// negations and boosters.
const contextWindow = 3

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "none": true, "nobody": true,
	"nothing": true, "neither": true, "nor": true, "cannot": true,
	"cant": true, "can't": true, "dont": true, "don't": true,
	"didnt": true, "didn't": true, "doesnt": true, "doesn't": true,
	"isnt": true, "isn't": true, "wasnt": true, "wasn't": true,
	"wont": true, "won't": true, "without": true, "aint": true, "ain't": true,
}

// boosters maps degree modifiers to their increment sign: positive
// entries intensify, negative entries dampen.
var boosters = map[string]float64{
	"absolutely": boosterIncrement, "completely": boosterIncrement,
	"extremely": boosterIncrement, "incredibly": boosterIncrement,
	"really": boosterIncrement, "remarkably": boosterIncrement,
	"so": boosterIncrement, "totally": boosterIncrement,
	"utterly": boosterIncrement, "very": boosterIncrement,
	"almost": -boosterIncrement, "barely": -boosterIncrement,
	"hardly": -boosterIncrement, "kinda": -boosterIncrement,
	"marginally": -boosterIncrement, "slightly": -boosterIncrement,
	"somewhat": -boosterIncrement,
}

// Analyzer scores texts against a fixed lexicon. Safe for concurrent
// use: the lexicon is never mutated after construction.
type Analyzer struct {
	lexicon Lexicon
}

// NewAnalyzer creates an Analyzer over the given lexicon.
func NewAnalyzer(lexicon Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// LexiconSize returns the number of entries the analyzer scores against.
func (a *Analyzer) LexiconSize() int {
	return len(a.lexicon)
}

// Score computes the compound polarity of text in [-1,1]. Texts with no
// lexicon hits, including the empty string, score exactly 0.
func (a *Analyzer) Score(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, token := range tokens {
		valence, ok := a.lexicon[token]
		if !ok {
			continue
		}

		start := i - contextWindow
		if start < 0 {
			start = 0
		}
		for j := start; j < i; j++ {
			prev := tokens[j]
			if incr, ok := boosters[prev]; ok {
				if valence > 0 {
					valence += incr
				} else if valence < 0 {
					valence -= incr
				}
			}
			if negations[prev] {
				valence *= negationScalar
			}
		}

		sum += valence
	}

	return normalize(sum)
}

// normalize maps a raw valence sum to [-1,1] using VADER's
// sum/sqrt(sum^2+alpha) curve.
func normalize(sum float64) float64 {
	if sum == 0 {
		return 0
	}
	compound := sum / math.Sqrt(sum*sum+normAlpha)
	return math.Max(-1, math.Min(1, compound))
}

// tokenize lowercases the text and strips leading/trailing punctuation
// from each whitespace-separated token. Inner apostrophes survive so
// contractions like "don't" match the negation set.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
