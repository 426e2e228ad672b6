package engine

import (
	"strings"

	"resumecheck/internal/types"
)

// keywordProfile is the engine-internal classification of one keyword
type keywordProfile struct {
	Category         types.KeywordCategory
	Risk             types.RiskLevel
	AllowedFrequency int
	RequiresProof    bool
	Alternative      string
	Proofs           []proofKind
}

// classifyKeyword assigns a category, risk level, allowed repetition
// frequency and proof requirement to a keyword. Lookup order: high-risk
// table, tool list, outcome hints, functional hints, default.
func (r *Ruleset) classifyKeyword(keyword string) keywordProfile {
	normalized := normalizeText(keyword)
	if normalized == "" {
		return keywordProfile{
			Category:         types.CategoryUnknown,
			Risk:             types.RiskLow,
			AllowedFrequency: 1,
			RequiresProof:    false,
		}
	}

	if rule, ok := r.highRisk[normalized]; ok {
		allowed := 1
		if _, isTool := r.tools[normalized]; isTool {
			allowed = 2
		}
		return keywordProfile{
			Category:         rule.Category,
			Risk:             types.RiskHigh,
			AllowedFrequency: allowed,
			RequiresProof:    true,
			Alternative:      rule.Alternative,
			Proofs:           rule.Proofs,
		}
	}

	if _, ok := r.tools[normalized]; ok {
		return keywordProfile{
			Category:         types.CategoryTool,
			Risk:             types.RiskLow,
			AllowedFrequency: 2,
			RequiresProof:    true,
		}
	}

	for _, hint := range r.outcomeHints {
		if strings.Contains(normalized, hint) {
			return keywordProfile{
				Category:         types.CategoryOutcome,
				Risk:             types.RiskMedium,
				AllowedFrequency: 1,
				RequiresProof:    true,
			}
		}
	}

	for _, hint := range r.functionalHints {
		if strings.Contains(normalized, hint) {
			return keywordProfile{
				Category:         types.CategoryFunctional,
				Risk:             types.RiskMedium,
				AllowedFrequency: 1,
				RequiresProof:    true,
			}
		}
	}

	return keywordProfile{
		Category:         types.CategoryFunctional,
		Risk:             types.RiskLow,
		AllowedFrequency: 1,
		RequiresProof:    true,
	}
}
