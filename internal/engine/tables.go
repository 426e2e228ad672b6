package engine

import (
	"maps"
	"slices"

	"resumecheck/internal/types"
)

// proofKind names a category-specific evidence predicate
type proofKind string

const (
	proofExcel     proofKind = "excel_proof"
	proofScale     proofKind = "scale_proof"
	proofOwnership proofKind = "ownership_proof"
	proofCX        proofKind = "cx_proof"
)

// highRiskRule describes a keyword that recruiters commonly see inflated.
// Each rule carries a safer alternative phrase and the predicates that must
// hold against the original resume for the claim to count as substantiated.
type highRiskRule struct {
	Category    types.KeywordCategory
	Alternative string
	Proofs      []proofKind
}

// Ruleset is the engine's read-only rule configuration. The default set is
// shared across all calls; With* methods return modified copies so the
// shared instance is never mutated.
type Ruleset struct {
	tools              map[string]struct{}
	highRisk           map[string]highRiskRule
	buzzwords          []string
	outcomeHints       []string
	functionalHints    []string
	outcomeVerbs       []string
	mirroringThreshold float64
}

var defaultTools = []string{
	"excel", "microsoft excel", "ms excel", "google sheets",
	"sql", "mysql", "postgresql", "python", "java", "javascript",
	"aws", "amazon web services", "azure", "gcp", "google cloud",
	"power bi", "powerbi", "tableau", "looker", "snowflake",
	"react", "node.js", "docker", "kubernetes", "terraform",
	"git", "jira", "confluence", "salesforce", "sap", "quickbooks",
}

var defaultHighRisk = map[string]highRiskRule{
	"excel": {
		Category:    types.CategoryTool,
		Alternative: "spreadsheet reporting and analysis",
		Proofs:      []proofKind{proofExcel},
	},
	"large data sets": {
		Category:    types.CategoryFunctional,
		Alternative: "high-volume data processing",
		Proofs:      []proofKind{proofScale},
	},
	"inventory management": {
		Category:    types.CategoryFunctional,
		Alternative: "stock tracking and replenishment",
		Proofs:      []proofKind{proofOwnership},
	},
	"customer experience": {
		Category:    types.CategoryFunctional,
		Alternative: "customer support and service",
		Proofs:      []proofKind{proofCX},
	},
}

var defaultBuzzwords = []string{
	"synergy", "results-driven", "self-starter", "rockstar", "ninja",
	"guru", "go-getter", "thought leader", "game-changer", "world-class",
	"best-in-class", "cutting-edge", "dynamic individual", "team player",
	"detail-oriented", "outside the box",
}

var defaultOutcomeHints = []string{
	"improvement", "optimization", "growth", "reduction", "increase",
	"efficiency", "impact", "revenue", "cost", "conversion",
}

var defaultFunctionalHints = []string{
	"management", "strategy", "leadership", "stakeholder",
}

var defaultOutcomeVerbs = []string{
	"increased", "reduced", "improved", "accelerated", "decreased",
	"grew", "saved", "delivered", "launched", "built", "optimized",
	"streamlined", "automated",
}

// DefaultMirroringThreshold is the shingle-similarity ratio above which the
// rewritten resume is considered to mirror the job description.
const DefaultMirroringThreshold = 0.75

// DefaultRuleset returns the built-in rule tables
func DefaultRuleset() *Ruleset {
	tools := make(map[string]struct{}, len(defaultTools))
	for _, t := range defaultTools {
		tools[t] = struct{}{}
	}
	return &Ruleset{
		tools:              tools,
		highRisk:           defaultHighRisk,
		buzzwords:          defaultBuzzwords,
		outcomeHints:       defaultOutcomeHints,
		functionalHints:    defaultFunctionalHints,
		outcomeVerbs:       defaultOutcomeVerbs,
		mirroringThreshold: DefaultMirroringThreshold,
	}
}

// WithTools returns a copy of the ruleset with additional tool names
func (r *Ruleset) WithTools(names ...string) *Ruleset {
	if len(names) == 0 {
		return r
	}
	out := r.clone()
	for _, name := range names {
		normalized := normalizeText(name)
		if normalized != "" {
			out.tools[normalized] = struct{}{}
		}
	}
	return out
}

// WithBuzzwords returns a copy of the ruleset with additional buzzwords
func (r *Ruleset) WithBuzzwords(words ...string) *Ruleset {
	if len(words) == 0 {
		return r
	}
	out := r.clone()
	for _, word := range words {
		normalized := normalizeText(word)
		if normalized != "" && !slices.Contains(out.buzzwords, normalized) {
			out.buzzwords = append(out.buzzwords, normalized)
		}
	}
	return out
}

// WithMirroringThreshold returns a copy of the ruleset with a different
// default mirroring threshold. Values outside (0,1] are ignored.
func (r *Ruleset) WithMirroringThreshold(threshold float64) *Ruleset {
	if threshold <= 0 || threshold > 1 {
		return r
	}
	out := r.clone()
	out.mirroringThreshold = threshold
	return out
}

func (r *Ruleset) clone() *Ruleset {
	return &Ruleset{
		tools:              maps.Clone(r.tools),
		highRisk:           r.highRisk,
		buzzwords:          slices.Clone(r.buzzwords),
		outcomeHints:       r.outcomeHints,
		functionalHints:    r.functionalHints,
		outcomeVerbs:       r.outcomeVerbs,
		mirroringThreshold: r.mirroringThreshold,
	}
}
