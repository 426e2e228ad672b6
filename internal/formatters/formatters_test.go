package formatters

import (
	"encoding/json"
	"testing"

	"resumecheck/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.ResumeComplianceReport {
	return &types.ResumeComplianceReport{
		Issues: []types.ComplianceIssue{
			{
				Severity:  types.SeverityHard,
				Validator: "keyword_frequency",
				Message:   "Keyword 'Kubernetes' appears 5 times, allowed 2",
			},
			{
				Severity:  types.SeveritySoft,
				Validator: "robotic_language_score",
				Message:   "Resume reads as keyword-stuffed",
			},
		},
		KeywordJustifications: []types.KeywordJustification{
			{
				Keyword:          "Kubernetes",
				Used:             true,
				Category:         types.CategoryTool,
				RiskLevel:        types.RiskMedium,
				AllowedFrequency: 2,
				Frequency:        5,
				Justification:    "Present in original resume",
			},
		},
		Scoring: types.DualScoringReport{
			ATSScore:       78,
			RecruiterScore: 64,
			ATSFactors: []types.ScoreFactor{
				{Factor: "keyword_coverage", Weight: 30, Score: 80},
			},
			RecruiterFactors: []types.ScoreFactor{
				{Factor: "authenticity", Weight: 30, Score: 55},
			},
			Verdict: "needs-review",
			Risk:    types.RiskTierMedium,
			Summary: "1 hard issue found.",
		},
	}
}

func sampleClassifications() types.ClassifyKeywordsOutput {
	return types.ClassifyKeywordsOutput{
		Classifications: []types.KeywordClassification{
			{
				Keyword:          "Terraform",
				Category:         types.CategoryTool,
				RiskLevel:        types.RiskLow,
				AllowedFrequency: 3,
			},
			{
				Keyword:          "thought leadership",
				Category:         types.CategoryOutcome,
				RiskLevel:        types.RiskHigh,
				AllowedFrequency: 1,
				RequiresProof:    true,
				Alternative:      "mentoring",
			},
		},
	}
}

func TestRegistryFormatDispatch(t *testing.T) {
	registry := NewFormatterRegistry()
	report := sampleReport()

	tests := []struct {
		name     string
		format   string
		data     any
		contains string
	}{
		{"report text", "text", report, "=== RESUME COMPLIANCE REPORT ==="},
		{"report markdown", "markdown", report, "# Resume Compliance Report"},
		{"report text by value", "text", *report, "ATS Score: 78/100"},
		{"keywords text", "text", sampleClassifications(), "=== KEYWORD CLASSIFICATION ==="},
		{"keywords markdown", "markdown", sampleClassifications(), "# Keyword Classification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := registry.Format(tt.data, tt.format)
			require.NoError(t, err)
			assert.Contains(t, output, tt.contains)
		})
	}
}

func TestRegistryJSONFallback(t *testing.T) {
	registry := NewFormatterRegistry()

	// json has only the "any" formatter registered, so every type
	// routes through it
	output, err := registry.Format(sampleReport(), "json")
	require.NoError(t, err)

	var decoded types.ResumeComplianceReport
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, 78, decoded.Scoring.ATSScore)
	assert.Len(t, decoded.Issues, 2)

	// Unknown types also fall back to JSON
	output, err = registry.Format(map[string]string{"hello": "world"}, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello": "world"}`, output)
}

func TestRegistryUnsupportedFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	_, err := registry.Format(sampleReport(), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no formatter found")
}

func TestRegistryUnsupportedTypeForFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	// text has no "any" fallback, so an unknown type is an error
	_, err := registry.Format(42, "text")
	require.Error(t, err)
}

func TestGetSupportedFormats(t *testing.T) {
	formats := NewFormatterRegistry().GetSupportedFormats()
	assert.ElementsMatch(t, []string{"json", "text", "markdown"}, formats)
}

func TestReportTextFormatterSections(t *testing.T) {
	output, err := (&ReportTextFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, output, "Verdict: needs-review")
	assert.Contains(t, output, "Risk: Medium")
	assert.Contains(t, output, "1. [HARD] keyword_frequency")
	assert.Contains(t, output, "2. [SOFT] robotic_language_score")
	assert.Contains(t, output, "=== KEYWORD JUSTIFICATIONS ===")
	assert.Contains(t, output, "Used: true (5 of 2 allowed)")
	assert.Contains(t, output, "=== SCORE BREAKDOWN ===")
}

func TestReportTextFormatterNoIssues(t *testing.T) {
	report := sampleReport()
	report.Issues = nil

	output, err := (&ReportTextFormatter{}).Format(report)
	require.NoError(t, err)
	assert.Contains(t, output, "No issues found.")
	assert.NotContains(t, output, "=== ISSUES ===")
}

func TestReportFormatterRejectsWrongType(t *testing.T) {
	_, err := (&ReportTextFormatter{}).Format("not a report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected ResumeComplianceReport")

	_, err = (&ReportMarkdownFormatter{}).Format(sampleClassifications())
	require.Error(t, err)
}

func TestKeywordsFormattersEmpty(t *testing.T) {
	empty := types.ClassifyKeywordsOutput{}

	output, err := (&KeywordsTextFormatter{}).Format(empty)
	require.NoError(t, err)
	assert.Contains(t, output, "No keywords provided.")

	output, err = (&KeywordsMarkdownFormatter{}).Format(empty)
	require.NoError(t, err)
	assert.Contains(t, output, "No keywords provided.")
}

func TestKeywordsTextFormatterAlternative(t *testing.T) {
	output, err := (&KeywordsTextFormatter{}).Format(sampleClassifications())
	require.NoError(t, err)

	assert.Contains(t, output, "Keyword: thought leadership")
	assert.Contains(t, output, "Category: outcome, Risk: high")
	assert.Contains(t, output, "Safer alternative: mentoring")
	// Low-risk tool entries carry no alternative line
	assert.Contains(t, output, "Keyword: Terraform")
}
