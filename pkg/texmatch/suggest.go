package texmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minSuggestScore is the lowest similarity reported as a near miss.
const minSuggestScore = 0.80

// Suggestion is the closest texture stem to a missing material/role suffix.
type Suggestion struct {
	Stem  string
	Score float64
}

// Suggest returns the candidate stem that most resembles the stem a
// texture for materialName in role r would need to have. It is only used
// for diagnostics: a suggestion never causes a binding. Returns false when
// nothing scores at least minSuggestScore.
func Suggest(materialName string, r Role, stems []string) (Suggestion, bool) {
	want := fold(Suffix(materialName, r))
	if want == "" {
		return Suggestion{}, false
	}

	wantLen := utf8.RuneCountInString(want)
	var best Suggestion
	for _, stem := range stems {
		// Compare against the tail of the stem so prefixes like
		// "Chair_" don't drag the score down.
		folded := tail(fold(stem), wantLen)
		score := float64(edlib.JaroWinklerSimilarity(want, folded))
		if score > best.Score {
			best = Suggestion{Stem: stem, Score: score}
		}
	}

	if best.Score < minSuggestScore {
		return Suggestion{}, false
	}
	return best, true
}

// fold lowercases s, strips accents, and drops separators.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
