package engine

import (
	"fmt"
	"strings"

	"resumecheck/internal/types"
)

// roboticSoftThreshold is the robotic-language score at or above which an
// advisory issue is raised
const roboticSoftThreshold = 0.6

// Engine runs compliance checks. It is stateless apart from its rule
// tables and safe for concurrent use.
type Engine struct {
	rules *Ruleset
}

// New creates an engine with the given rules; nil selects the defaults
func New(rules *Ruleset) *Engine {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return &Engine{rules: rules}
}

// Check audits a rewritten resume against the job description, the
// original resume, and the target keyword list. The result is fully
// determined by the input: same input, same report. Empty inputs are
// not an error; they produce zero counts and heuristic defaults.
func (e *Engine) Check(input types.CheckResumeInput) (*types.ResumeComplianceReport, error) {
	threshold := input.MirroringThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = e.rules.mirroringThreshold
	}

	keywords := dedupeKeywords(input.TargetKeywords)
	sections := splitSections(input.Markdown)
	bullets := bulletLines(input.Markdown)

	issues := make([]types.ComplianceIssue, 0, 4)
	ledger := make([]types.KeywordJustification, 0, len(keywords))

	for _, keyword := range keywords {
		profile := e.rules.classifyKeyword(keyword)
		count, freqIssues := checkFrequency(input.Markdown, sections, keyword, profile)
		issues = append(issues, freqIssues...)

		just := types.KeywordJustification{
			Keyword:                 keyword,
			Used:                    count > 0 || matchesKeyword(input.Markdown, keyword),
			Category:                profile.Category,
			RiskLevel:               profile.Risk,
			AllowedFrequency:        profile.AllowedFrequency,
			RequiresProof:           profile.RequiresProof,
			Frequency:               count,
			ResumeEvidence:          findSnippet(input.OriginalResume, keyword),
			JobDescriptionReference: findSnippet(input.JobDescription, keyword),
		}

		proven := true
		if just.Used && profile.RequiresProof {
			proven = verifyEvidence(input.OriginalResume, keyword, profile)
		}

		switch {
		case !just.Used:
			just.Justification = fmt.Sprintf("Keyword %q was not used in the rewritten resume", keyword)
		case proven:
			just.Justification = fmt.Sprintf("Keyword %q is supported by the original resume", keyword)
		default:
			just.Justification = fmt.Sprintf("Keyword %q is not supported by the original resume", keyword)
			just.Reason = "no matching experience or evidence found in the original resume"
			issues = append(issues, types.ComplianceIssue{
				Severity:  types.SeverityHard,
				Validator: validatorEvidence,
				Message:   fmt.Sprintf("Keyword %q lacks supporting evidence in the original resume", keyword),
				Details: map[string]any{
					"keyword":  keyword,
					"category": string(profile.Category),
					"risk":     string(profile.Risk),
				},
			})
		}

		if input.RemoveRiskyKeywords && just.Used && !proven &&
			profile.Risk == types.RiskHigh && profile.Alternative != "" {
			just.AlternativeUsed = profile.Alternative
			issues = append(issues, types.ComplianceIssue{
				Severity:  types.SeverityHard,
				Validator: validatorRemoveRisky,
				Message:   fmt.Sprintf("Replace unproven high-risk keyword %q with %q", keyword, profile.Alternative),
				Details: map[string]any{
					"keyword":     keyword,
					"alternative": profile.Alternative,
				},
			})
		}

		ledger = append(ledger, just)
	}

	issues = append(issues, checkMirroring(input.JobDescription, input.Markdown, threshold)...)

	buzzCount := e.rules.countBuzzwords(input.Markdown)
	sig := heuristicSignals{
		Robotic:            e.rules.roboticScore(input.Markdown, bullets, buzzCount),
		BuzzwordCount:      buzzCount,
		ToolFirstLines:     e.rules.toolFirstBullets(bullets),
		OutcomeClarity:     e.rules.outcomeClarity(bullets),
		SectionStructure:   sectionStructureScore(sections),
		FormattingClarity:  formattingClarity(input.Markdown),
		Consistency:        consistencyScore(input.Markdown),
		SemanticSkillMatch: semanticSkillMatch(input.Markdown, keywords),
		RoleAlignment:      roleAlignment(input.JobDescription, sections),
	}
	sig.ToolFirst = len(sig.ToolFirstLines) > 0

	if sig.Robotic >= roboticSoftThreshold {
		issues = append(issues, types.ComplianceIssue{
			Severity:  types.SeveritySoft,
			Validator: validatorRobotic,
			Message:   fmt.Sprintf("Writing reads as templated (robotic score %.2f)", sig.Robotic),
			Details:   map[string]any{"score": sig.Robotic},
		})
	}
	if sig.ToolFirst {
		issues = append(issues, types.ComplianceIssue{
			Severity:  types.SeveritySoft,
			Validator: validatorToolFirst,
			Message:   fmt.Sprintf("%d bullet(s) lead with a tool name instead of an achievement", len(sig.ToolFirstLines)),
			Details:   map[string]any{"lines": sig.ToolFirstLines},
		})
	}

	hardCount := 0
	for _, issue := range issues {
		if issue.Severity == types.SeverityHard {
			hardCount++
		}
	}

	return &types.ResumeComplianceReport{
		Issues:                issues,
		KeywordJustifications: ledger,
		Scoring:               buildScoring(sig, hardCount, len(keywords)),
	}, nil
}

// ClassifyKeywords exposes the keyword rule tables without running a
// full check
func (e *Engine) ClassifyKeywords(keywords []string) types.ClassifyKeywordsOutput {
	deduped := dedupeKeywords(keywords)
	out := types.ClassifyKeywordsOutput{
		Classifications: make([]types.KeywordClassification, 0, len(deduped)),
	}
	for _, keyword := range deduped {
		profile := e.rules.classifyKeyword(keyword)
		out.Classifications = append(out.Classifications, types.KeywordClassification{
			Keyword:          keyword,
			Category:         profile.Category,
			RiskLevel:        profile.Risk,
			AllowedFrequency: profile.AllowedFrequency,
			RequiresProof:    profile.RequiresProof,
			Alternative:      profile.Alternative,
		})
	}
	return out
}

// dedupeKeywords drops blank entries and case-insensitive duplicates
// while preserving first-seen order and spelling
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			continue
		}
		key := normalizeText(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
