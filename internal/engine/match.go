package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxVariants caps the synonym set built for any single keyword
const maxVariants = 10

// keywordVariants builds the set of equivalent spellings for a keyword:
// brand prefixes ("MS Excel" / "Microsoft Excel" / "Excel"), compacted
// product names ("Power BI" / "PowerBI"), and common acronym expansions
// ("AWS" / "Amazon Web Services"). All variants are lowercase.
func keywordVariants(keyword string) []string {
	base := normalizeText(keyword)
	if base == "" {
		return nil
	}

	variants := []string{base}
	add := func(v string) {
		if len(variants) >= maxVariants {
			return
		}
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}

	if rest, ok := strings.CutPrefix(base, "ms "); ok {
		add(rest)
		add("microsoft " + rest)
	}
	if rest, ok := strings.CutPrefix(base, "microsoft "); ok {
		add(rest)
		add("ms " + rest)
	}

	switch base {
	case "power bi":
		add("powerbi")
	case "powerbi":
		add("power bi")
	case "google sheets":
		add("sheets")
	case "sheets":
		add("google sheets")
	case "excel":
		add("microsoft excel")
		add("ms excel")
	case "aws":
		add("amazon web services")
	case "amazon web services":
		add("aws")
	}

	return variants
}

// variantPattern compiles a word-boundary regex for one variant: literal
// characters escaped, internal whitespace matched flexibly
func variantPattern(variant string) (*regexp.Regexp, error) {
	parts := strings.Fields(variant)
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile(`(?i)\b` + strings.Join(escaped, `\s+`) + `\b`)
}

// matchesKeyword reports whether any variant of the keyword appears in
// the text. Word-boundary matching is attempted first; if the pattern
// cannot be compiled the check degrades to case-insensitive substring
// containment rather than failing.
func matchesKeyword(text, keyword string) bool {
	if text == "" {
		return false
	}
	for _, variant := range keywordVariants(keyword) {
		re, err := variantPattern(variant)
		if err != nil {
			if strings.Contains(strings.ToLower(text), variant) {
				return true
			}
			continue
		}
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// countKeyword counts occurrences of a keyword in the text. Matches
// embedded in a larger alphanumeric token are excluded: RE2 has no
// lookaround, so the adjacent runes are checked explicitly. When the
// variants overlap (e.g. "excel" inside "microsoft excel") the highest
// per-variant count wins so an occurrence is never counted twice.
func countKeyword(text, keyword string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	best := 0
	for _, variant := range keywordVariants(keyword) {
		if n := countBounded(lower, variant); n > best {
			best = n
		}
	}
	return best
}

// countBounded counts boundary-safe occurrences of needle in lowercase
// haystack
func countBounded(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count, offset := 0, 0
	for {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return count
		}
		start := offset + idx
		end := start + len(needle)
		if !wordRuneBefore(haystack, start) && !wordRuneAt(haystack, end) {
			count++
		}
		offset = start + len(needle)
	}
}

func wordRuneBefore(s string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneAt(s string, idx int) bool {
	if idx >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// snippetRadius is how many characters of context a snippet keeps on
// each side of a match
const snippetRadius = 60

// findSnippet returns a short excerpt of text around the first variant
// match of the keyword, or "" when the keyword does not appear
func findSnippet(text, keyword string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, variant := range keywordVariants(keyword) {
		idx := strings.Index(lower, variant)
		if idx < 0 {
			continue
		}
		start := idx - snippetRadius
		if start < 0 {
			start = 0
		}
		end := idx + len(variant) + snippetRadius
		if end > len(text) {
			end = len(text)
		}
		snippet := strings.Join(strings.Fields(text[start:end]), " ")
		if start > 0 {
			snippet = "…" + snippet
		}
		if end < len(text) {
			snippet += "…"
		}
		return snippet
	}
	return ""
}
