package engine

import (
	"fmt"

	"resumecheck/internal/types"
)

// validator names used in issue records
const (
	validatorKeywordFrequency = "keyword_frequency"
	validatorMirroring        = "jd_phrase_mirroring"
	validatorEvidence         = "experience_evidence"
	validatorRemoveRisky      = "remove_risky_keywords"
	validatorRobotic          = "robotic_language_score"
	validatorToolFirst        = "tool_first_sentence"
)

// checkFrequency applies the repetition rules for one keyword: the global
// count must not exceed the allowed frequency, and no named section may
// repeat the keyword. Returns the global count and any hard issues.
func checkFrequency(markdown string, sections *sectionMap, keyword string, profile keywordProfile) (int, []types.ComplianceIssue) {
	var issues []types.ComplianceIssue

	global := countKeyword(markdown, keyword)
	if global > profile.AllowedFrequency {
		issues = append(issues, types.ComplianceIssue{
			Severity:  types.SeverityHard,
			Validator: validatorKeywordFrequency,
			Message:   fmt.Sprintf("Keyword %q appears %d times; at most %d allowed", keyword, global, profile.AllowedFrequency),
			Details: map[string]any{
				"keyword": keyword,
				"count":   global,
				"allowed": profile.AllowedFrequency,
			},
		})
	}

	for _, name := range sections.names {
		if name == sectionOther {
			continue
		}
		if n := countKeyword(sections.body(name), keyword); n > 1 {
			issues = append(issues, types.ComplianceIssue{
				Severity:  types.SeverityHard,
				Validator: validatorKeywordFrequency,
				Message:   fmt.Sprintf("Keyword %q repeats %d times within section %s", keyword, n, name),
				Details: map[string]any{
					"keyword": keyword,
					"section": name,
					"count":   n,
				},
			})
		}
	}

	return global, issues
}

// mirroringSimilarity computes the 7-word shingle overlap between the job
// description and the rewritten resume. Token streams are capped so cost
// is bounded regardless of input size.
func mirroringSimilarity(jobDescription, markdown string) (similarity float64, intersection int) {
	jdTokens := wordTokens(jobDescription)
	if len(jdTokens) > mirrorTokenCap {
		jdTokens = jdTokens[:mirrorTokenCap]
	}
	mdTokens := wordTokens(markdown)
	if len(mdTokens) > mirrorTokenCap {
		mdTokens = mdTokens[:mirrorTokenCap]
	}

	jdShingles := shingleSet(jdTokens, shingleSize)
	mdShingles := shingleSet(mdTokens, shingleSize)

	for shingle := range jdShingles {
		if _, ok := mdShingles[shingle]; ok {
			intersection++
		}
	}

	smaller := len(jdShingles)
	if len(mdShingles) < smaller {
		smaller = len(mdShingles)
	}
	if smaller < 1 {
		smaller = 1
	}
	return float64(intersection) / float64(smaller), intersection
}

// checkMirroring emits a hard issue when the rewritten resume reuses the
// job description's phrasing beyond the threshold
func checkMirroring(jobDescription, markdown string, threshold float64) []types.ComplianceIssue {
	similarity, intersection := mirroringSimilarity(jobDescription, markdown)
	if similarity < threshold || intersection == 0 {
		return nil
	}
	return []types.ComplianceIssue{{
		Severity:  types.SeverityHard,
		Validator: validatorMirroring,
		Message:   fmt.Sprintf("Resume mirrors job description phrasing (similarity %.2f, threshold %.2f)", similarity, threshold),
		Details: map[string]any{
			"similarity":      similarity,
			"threshold":       threshold,
			"shared_shingles": intersection,
		},
	}}
}
