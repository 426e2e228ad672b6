package engine

import (
	"sort"
	"strings"
)

// heuristicSignals carries the raw scores feeding the dual aggregator.
// All fractional values are clamped to [0,1].
type heuristicSignals struct {
	Robotic            float64
	BuzzwordCount      int
	ToolFirst          bool
	ToolFirstLines     []string
	OutcomeClarity     float64
	SectionStructure   float64
	FormattingClarity  float64
	Consistency        float64
	SemanticSkillMatch float64
	RoleAlignment      float64
}

// requiredSections are the headings a well-structured resume carries
var requiredSections = []string{"SUMMARY", "EXPERIENCE", "SKILLS", "EDUCATION"}

const (
	roboticFirstWordWeight = 0.15
	roboticBuzzwordWeight  = 0.35
	roboticBulletLenWeight = 0.25
	roboticDocLenWeight    = 0.25

	buzzwordCap        = 6
	longBulletWords    = 22
	longDocumentChars  = 6500
	docLengthDivisor   = 4000
	maxToolFirstLines  = 10
	roleAlignTopWords  = 40
	roleAlignParagraph = 12
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// countBuzzwords totals buzzword occurrences across the document
func (r *Ruleset) countBuzzwords(markdown string) int {
	lower := strings.ToLower(markdown)
	total := 0
	for _, buzz := range r.buzzwords {
		total += countBounded(lower, buzz)
	}
	return total
}

// roboticScore estimates how template-like the writing feels: repetitive
// bullet openers, buzzword density, overlong bullets and an overlong
// document each contribute a weighted, clamped sub-term.
func (r *Ruleset) roboticScore(markdown string, bullets []string, buzzCount int) float64 {
	var repeatTerm float64
	if len(bullets) > 0 {
		openerCounts := make(map[string]int, len(bullets))
		for _, b := range bullets {
			openerCounts[firstWord(b)]++
		}
		repeated := 0
		for _, b := range bullets {
			if openerCounts[firstWord(b)] >= 3 {
				repeated++
			}
		}
		repeatTerm = float64(repeated) / float64(len(bullets))
	}

	buzz := buzzCount
	if buzz > buzzwordCap {
		buzz = buzzwordCap
	}
	buzzTerm := float64(buzz) / float64(buzzwordCap)

	var lengthTerm float64
	if len(bullets) > 0 {
		totalWords := 0
		for _, b := range bullets {
			totalWords += len(strings.Fields(b))
		}
		avg := float64(totalWords) / float64(len(bullets))
		if avg > longBulletWords {
			lengthTerm = (avg - longBulletWords) / longBulletWords
		}
	}

	var docTerm float64
	if len(markdown) > longDocumentChars {
		docTerm = float64(len(markdown)-longDocumentChars) / docLengthDivisor
	}

	score := roboticFirstWordWeight*clamp01(repeatTerm) +
		roboticBuzzwordWeight*clamp01(buzzTerm) +
		roboticBulletLenWeight*clamp01(lengthTerm) +
		roboticDocLenWeight*clamp01(docTerm)
	return clamp01(score)
}

// toolFirstBullets returns bullet lines that open with a tool name.
// Leading with the tool instead of the achievement reads as keyword
// placement to a recruiter.
func (r *Ruleset) toolFirstBullets(bullets []string) []string {
	var offending []string
	for _, b := range bullets {
		lower := strings.ToLower(b)
		for tool := range r.tools {
			if strings.HasPrefix(lower, tool) && !wordRuneAt(lower, len(tool)) {
				offending = append(offending, b)
				break
			}
		}
		if len(offending) >= maxToolFirstLines {
			break
		}
	}
	return offending
}

// outcomeClarity is the fraction of bullets that state a measurable
// result: a number, a percentage, or an outcome verb
func (r *Ruleset) outcomeClarity(bullets []string) float64 {
	if len(bullets) == 0 {
		return 0.6
	}
	withOutcome := 0
	for _, b := range bullets {
		lower := strings.ToLower(b)
		if strings.ContainsAny(b, "0123456789") || strings.Contains(b, "%") ||
			containsAnyWord(lower, r.outcomeVerbs) {
			withOutcome++
		}
	}
	return float64(withOutcome) / float64(len(bullets))
}

// sectionStructureScore is the fraction of required headings present
func sectionStructureScore(sections *sectionMap) float64 {
	present := 0
	for _, req := range requiredSections {
		if sections.has(req) {
			present++
		}
	}
	return float64(present) / float64(len(requiredSections))
}

// formattingClarity penalizes layouts ATS parsers mangle: pipe tables
// with separator rows and raw table/div HTML
func formattingClarity(markdown string) float64 {
	lower := strings.ToLower(markdown)
	if strings.Contains(lower, "<table") || strings.Contains(lower, "<div") {
		return 0.6
	}
	hasPipeRow, hasSeparator := false, false
	for line := range strings.Lines(markdown) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			hasPipeRow = true
			if strings.Contains(trimmed, "---") {
				hasSeparator = true
			}
		}
	}
	if hasPipeRow && hasSeparator {
		return 0.6
	}
	return 0.9
}

// consistencyScore checks experience-entry headers of the form
// `### Role | Company | Dates` for a uniform field count
func consistencyScore(markdown string) float64 {
	total, wellFormed := 0, 0
	for line := range strings.Lines(markdown) {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "### ")
		if !ok || !strings.Contains(rest, "|") {
			continue
		}
		total++
		if len(strings.Split(rest, "|")) >= 3 {
			wellFormed++
		}
	}
	if total == 0 {
		return 0.75
	}
	return float64(wellFormed) / float64(total)
}

// semanticSkillMatch is the fraction of target keywords that appear
// anywhere in the rewritten resume
func semanticSkillMatch(markdown string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.8
	}
	found := 0
	for _, kw := range keywords {
		if matchesKeyword(markdown, kw) {
			found++
		}
	}
	return float64(found) / float64(len(keywords))
}

// roleAlignment measures overlap between the job description's dominant
// vocabulary and the resume's SUMMARY section
func roleAlignment(jobDescription string, sections *sectionMap) float64 {
	jdTokens := wordTokens(jobDescription)
	if len(jdTokens) == 0 {
		return 0
	}

	counts := make(map[string]int, len(jdTokens))
	for _, tok := range jdTokens {
		counts[tok]++
	}
	top := make([]string, 0, len(counts))
	for tok := range counts {
		top = append(top, tok)
	}
	sort.Slice(top, func(i, j int) bool {
		if counts[top[i]] != counts[top[j]] {
			return counts[top[i]] > counts[top[j]]
		}
		return top[i] < top[j]
	})
	if len(top) > roleAlignTopWords {
		top = top[:roleAlignTopWords]
	}

	summaryWords := make(map[string]struct{})
	for _, name := range sections.names {
		if strings.Contains(name, "SUMMARY") {
			for _, tok := range wordTokens(sections.body(name)) {
				summaryWords[tok] = struct{}{}
			}
		}
	}

	overlap := 0
	for _, tok := range top {
		if _, ok := summaryWords[tok]; ok {
			overlap++
		}
	}

	norm := len(top)
	if norm > roleAlignParagraph {
		norm = roleAlignParagraph
	}
	if norm == 0 {
		return 0
	}
	return clamp01(float64(overlap) / float64(norm))
}
