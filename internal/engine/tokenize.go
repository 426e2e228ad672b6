package engine

import (
	"strings"
	"unicode"
)

const (
	// minTokenLen filters out short glue words during tokenization
	minTokenLen = 3
	// mirrorTokenCap bounds the token streams compared for JD mirroring so
	// cost stays fixed for pathological input lengths
	mirrorTokenCap = 1600
	// shingleSize is the n-gram width used for mirroring similarity
	shingleSize = 7
)

// bulletMarkers are the glyphs recognized as bullet-line prefixes
var bulletMarkers = []string{"- ", "* ", "• ", "– ", "▪ ", "◦ "}

// normalizeText lowercases a string and collapses runs of whitespace
// into single spaces
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// wordTokens splits text into lowercase word tokens of at least
// minTokenLen characters. Tokens are runs of letters and digits.
func wordTokens(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// shingleSet builds the set of contiguous n-word shingles over a token
// stream. Streams shorter than n produce an empty set.
func shingleSet(tokens []string, n int) map[string]struct{} {
	if len(tokens) < n {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}
	return set
}

// bulletLines returns the text of every bullet line in the markdown,
// with the bullet glyph stripped
func bulletLines(markdown string) []string {
	var bullets []string
	for line := range strings.Lines(markdown) {
		trimmed := strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if rest, ok := strings.CutPrefix(trimmed, marker); ok {
				rest = strings.TrimSpace(rest)
				if rest != "" {
					bullets = append(bullets, rest)
				}
				break
			}
		}
	}
	return bullets
}

// firstWord returns the lowercased first word of a line, trimmed of
// trailing punctuation
func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(strings.ToLower(fields[0]), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
