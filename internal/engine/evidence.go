package engine

import (
	"regexp"
	"strings"
)

// Proof predicates are deliberately coarse heuristics: they look for
// co-occurring evidence words in the original resume rather than trying
// to model meaning. They err on the side of accepting plausible claims.

var excelEvidenceWords = []string{
	"report", "reporting", "dashboard", "model", "modeling", "analysis",
	"analyzing", "pivot", "vlookup", "lookup", "forecast", "tracking",
}

var excelGenericWords = []string{
	"spreadsheet", "report", "dashboard", "model", "analysis", "tracking",
}

var scaleWords = []string{
	"million", "billion", "thousand", "tb", "gb", "records", "rows", "transactions",
}

var ownershipVerbs = []string{
	"owned", "accountable", "responsible for", "led", "managed", "end-to-end", "oversaw",
}

var inventoryNouns = []string{
	"inventory", "stock", "supply", "warehouse", "replenish", "demand planning", "procurement",
}

var cxWords = []string{
	"customer", "client", "support", "service", "satisfaction", "nps",
	"csat", "complaint", "tickets", "calls",
}

// largeNumberPattern matches plain or comma-separated numbers of at least
// four digits (i.e. >= 1000)
var largeNumberPattern = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b|\b\d{4,}\b`)

func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if countBounded(text, w) > 0 {
			return true
		}
	}
	return false
}

// excelProof holds when the original resume mentions Excel next to
// analysis/reporting vocabulary, or — when Excel itself is absent —
// when generic spreadsheet-work words appear
func excelProof(original string) bool {
	lower := strings.ToLower(original)
	if matchesKeyword(original, "excel") {
		return containsAnyWord(lower, excelEvidenceWords)
	}
	return containsAnyWord(lower, excelGenericWords)
}

// scaleProof holds when the original resume shows a number >= 1000 or a
// scale word
func scaleProof(original string) bool {
	if largeNumberPattern.MatchString(original) {
		return true
	}
	return containsAnyWord(strings.ToLower(original), scaleWords)
}

// ownershipProof requires both an ownership verb and an inventory-domain
// noun in the original resume
func ownershipProof(original string) bool {
	lower := strings.ToLower(original)
	return containsAnyWord(lower, ownershipVerbs) && containsAnyWord(lower, inventoryNouns)
}

// cxProof holds when the original resume shows any customer-facing work
func cxProof(original string) bool {
	return containsAnyWord(strings.ToLower(original), cxWords)
}

// proofHolds dispatches a single proof predicate against the original
// resume text
func proofHolds(kind proofKind, original string) bool {
	switch kind {
	case proofExcel:
		return excelProof(original)
	case proofScale:
		return scaleProof(original)
	case proofOwnership:
		return ownershipProof(original)
	case proofCX:
		return cxProof(original)
	default:
		return false
	}
}

// verifyEvidence checks whether the original resume substantiates a
// keyword: direct verbatim presence of any variant counts, otherwise
// every category-specific predicate attached to the keyword must hold.
// A keyword with no predicates and no direct presence is unproven.
func verifyEvidence(original, keyword string, profile keywordProfile) bool {
	if matchesKeyword(original, keyword) {
		return true
	}
	if len(profile.Proofs) == 0 {
		return false
	}
	for _, kind := range profile.Proofs {
		if !proofHolds(kind, original) {
			return false
		}
	}
	return true
}
