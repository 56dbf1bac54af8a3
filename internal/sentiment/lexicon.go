package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hy461283-sudo/pulseX/internal/domain"
)

// Lexicon maps a lowercase token to its mean valence rating.
// VADER valences range roughly over [-4, 4].
type Lexicon map[string]float64

// ParseLexicon reads a VADER-style lexicon: one entry per line,
// tab-separated, token first, mean valence second. Remaining columns
// (stddev, raw ratings) are ignored, as are multi-word entries and
// lines that do not parse.
func ParseLexicon(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		token := strings.ToLower(strings.TrimSpace(parts[0]))
		if token == "" || strings.ContainsRune(token, ' ') {
			continue
		}

		valence, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}

		lex[token] = valence
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	if len(lex) == 0 {
		return nil, fmt.Errorf("lexicon contains no usable entries")
	}

	return lex, nil
}

// LoadLexiconFile parses the lexicon at path. A missing file maps to
// domain.ErrLexiconMissing so callers can print the fetch-lexicon
// remediation instead of a bare stat error.
func LoadLexiconFile(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run fetch-lexicon to download it)", domain.ErrLexiconMissing, path)
		}
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	defer f.Close()

	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	return lex, nil
}
