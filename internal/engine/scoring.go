package engine

import (
	"math"

	"resumecheck/internal/types"
)

// ATS and recruiter factor names
const (
	factorSemanticMatch    = "Semantic skill match"
	factorRoleAlignment    = "Role alignment"
	factorSectionStructure = "Section structure"
	factorKeywordPresence  = "Keyword presence non-repetitive"
	factorFormatting       = "Formatting clarity"
	factorConsistency      = "Consistency"

	factorCredibility    = "Credibility"
	factorReadability    = "Readability"
	factorOutcomeClarity = "Outcome clarity"
	factorBelievability  = "Skill believability"
	factorNoBuzzwords    = "No buzzwords"
	factorDefensibility  = "Interview defensibility"
)

const (
	riskHighHardIssues      = 2
	riskHighRecruiterFloor  = 60
	riskMediumRecruiterFloor = 75

	credibilityHardCap   = 4
	defensibilityHardCap = 6

	believabilityToolFirstPenalty = 0.15
	believabilityKeywordBase      = 18
	believabilityKeywordDivisor   = 30
)

func toScore(fraction float64) int {
	return int(math.Round(clamp01(fraction) * 100))
}

func weightedTotal(factors []types.ScoreFactor) int {
	total := 0.0
	for _, f := range factors {
		total += float64(f.Weight) * float64(f.Score) / 100.0
	}
	score := int(math.Round(total))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// buildScoring aggregates the heuristic signals into the dual report.
// The ATS side models mechanical parsing and keyword coverage; the
// recruiter side models a skeptical human read. hardCount is the number
// of hard issues found, keywordCount the deduplicated target keyword
// count.
func buildScoring(sig heuristicSignals, hardCount, keywordCount int) types.DualScoringReport {
	atsFactors := []types.ScoreFactor{
		{Factor: factorSemanticMatch, Weight: 30, Score: toScore(sig.SemanticSkillMatch)},
		{Factor: factorRoleAlignment, Weight: 20, Score: toScore(sig.RoleAlignment)},
		{Factor: factorSectionStructure, Weight: 15, Score: toScore(sig.SectionStructure)},
		{Factor: factorKeywordPresence, Weight: 15, Score: toScore(sig.SemanticSkillMatch*0.9 + 0.1)},
		{Factor: factorFormatting, Weight: 10, Score: toScore(sig.FormattingClarity)},
		{Factor: factorConsistency, Weight: 10, Score: toScore(sig.Consistency)},
	}

	credibility := 1 - math.Min(1, float64(hardCount)/credibilityHardCap)
	defensibility := 1 - math.Min(1, float64(hardCount)/defensibilityHardCap)

	believabilityPenalty := 0.0
	if sig.ToolFirst {
		believabilityPenalty = believabilityToolFirstPenalty
	}
	believabilityPenalty += math.Max(0,
		float64(keywordCount-believabilityKeywordBase)/believabilityKeywordDivisor)
	believability := 1 - math.Min(1, believabilityPenalty)

	buzzPenalty := math.Min(1, float64(sig.BuzzwordCount)/buzzwordCap)

	recruiterFactors := []types.ScoreFactor{
		{Factor: factorCredibility, Weight: 30, Score: toScore(credibility)},
		{Factor: factorReadability, Weight: 20, Score: toScore(1 - sig.Robotic)},
		{Factor: factorOutcomeClarity, Weight: 20, Score: toScore(sig.OutcomeClarity)},
		{Factor: factorBelievability, Weight: 15, Score: toScore(believability)},
		{Factor: factorNoBuzzwords, Weight: 10, Score: toScore(1 - buzzPenalty)},
		{Factor: factorDefensibility, Weight: 5, Score: toScore(defensibility)},
	}

	ats := weightedTotal(atsFactors)
	recruiter := weightedTotal(recruiterFactors)
	risk := riskTier(hardCount, recruiter)
	verdict, summary := verdictFor(risk)

	return types.DualScoringReport{
		ATSScore:         ats,
		RecruiterScore:   recruiter,
		ATSFactors:       atsFactors,
		RecruiterFactors: recruiterFactors,
		Verdict:          verdict,
		Risk:             risk,
		Summary:          summary,
	}
}

func riskTier(hardCount, recruiterScore int) types.RiskTier {
	switch {
	case hardCount >= riskHighHardIssues || recruiterScore < riskHighRecruiterFloor:
		return types.RiskTierHigh
	case hardCount == 1 || recruiterScore < riskMediumRecruiterFloor:
		return types.RiskTierMedium
	default:
		return types.RiskTierLow
	}
}

func verdictFor(risk types.RiskTier) (verdict, summary string) {
	switch risk {
	case types.RiskTierHigh:
		return "Needs revision before sending",
			"The resume has blocking issues or reads poorly to a recruiter. Resolve the hard issues and rework flagged sections before using it."
	case types.RiskTierMedium:
		return "Usable with caution",
			"The resume is largely sound but carries at least one concern a recruiter may probe. Review the flagged issues before sending."
	default:
		return "Ready to send",
			"No blocking issues were found and the resume reads credibly. Minor advisory flags, if any, are listed in the issues."
	}
}
