package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumecheck/internal/types"
)

const cleanResume = `## Summary
Data analyst focused on retail analytics and clear reporting.

## Experience
### Data Analyst | Acme Retail | 2021 - 2024
- Increased weekly reporting accuracy by 15% with better SQL queries
- Reduced manual preparation time through Python automation

## Skills
SQL, Python

## Education
- BS Statistics, State University
`

const cleanJobDescription = `Looking for a data analyst with SQL and Python experience
to own retail analytics and reporting for regional teams.`

const cleanOriginal = `Data analyst at Acme Retail. Wrote SQL queries and Python
scripts that produced weekly retail reporting for managers.`

func cleanInput() types.CheckResumeInput {
	return types.CheckResumeInput{
		Markdown:       cleanResume,
		JobDescription: cleanJobDescription,
		OriginalResume: cleanOriginal,
		TargetKeywords: []string{"SQL", "Python"},
	}
}

func TestCheckCleanResume(t *testing.T) {
	report, err := New(nil).Check(cleanInput())
	require.NoError(t, err)

	assert.Empty(t, report.Issues)
	assert.Zero(t, report.HardIssueCount())
	assert.Equal(t, types.RiskTierLow, report.Scoring.Risk)

	require.Len(t, report.KeywordJustifications, 2)
	for _, just := range report.KeywordJustifications {
		assert.True(t, just.Used)
		assert.Empty(t, just.Reason)
		assert.NotEmpty(t, just.ResumeEvidence)
		assert.NotEmpty(t, just.JobDescriptionReference)
	}
}

func TestCheckIsDeterministic(t *testing.T) {
	engine := New(nil)

	first, err := engine.Check(cleanInput())
	require.NoError(t, err)
	second, err := engine.Check(cleanInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckStuffedResume(t *testing.T) {
	input := types.CheckResumeInput{
		Markdown:            "## Summary\nExcel expert using Excel and Excel daily.\n",
		JobDescription:      "Analyst role requiring Excel.",
		OriginalResume:      "Retail associate handling a cash register.",
		TargetKeywords:      []string{"Excel"},
		RemoveRiskyKeywords: true,
	}

	report, err := New(nil).Check(input)
	require.NoError(t, err)

	validators := make(map[string]int)
	for _, issue := range report.Issues {
		validators[issue.Validator]++
	}

	// 3 uses vs 2 allowed globally, 3 in one section, no evidence, and
	// a replacement demand for the unproven high-risk keyword
	assert.Equal(t, 2, validators[validatorKeywordFrequency])
	assert.Equal(t, 1, validators[validatorEvidence])
	assert.Equal(t, 1, validators[validatorRemoveRisky])
	assert.Equal(t, 4, report.HardIssueCount())
	assert.Equal(t, types.RiskTierHigh, report.Scoring.Risk)

	require.Len(t, report.KeywordJustifications, 1)
	just := report.KeywordJustifications[0]
	assert.True(t, just.Used)
	assert.Equal(t, 3, just.Frequency)
	assert.NotEmpty(t, just.Reason)
	assert.Equal(t, "spreadsheet reporting and analysis", just.AlternativeUsed)
}

func TestCheckMirroredResume(t *testing.T) {
	jd := `We are seeking someone who analyzed customer retention data across
multiple regions using statistical methods and presented findings weekly.`

	input := types.CheckResumeInput{
		Markdown:       "## Summary\n" + jd + "\n",
		JobDescription: jd,
		OriginalResume: jd,
	}

	report, err := New(nil).Check(input)
	require.NoError(t, err)

	found := false
	for _, issue := range report.Issues {
		if issue.Validator == validatorMirroring {
			found = true
			assert.Equal(t, types.SeverityHard, issue.Severity)
		}
	}
	assert.True(t, found, "expected a mirroring issue")
}

func TestCheckThresholdOverride(t *testing.T) {
	jd := `We are seeking someone who analyzed customer retention data across
multiple regions using statistical methods and presented findings weekly.`

	input := types.CheckResumeInput{
		Markdown:           "## Summary\n" + jd + "\n",
		JobDescription:     jd,
		OriginalResume:     jd,
		MirroringThreshold: 1.5, // out of range, defaults apply
	}

	report, err := New(nil).Check(input)
	require.NoError(t, err)
	assert.Positive(t, report.HardIssueCount())
}

func TestCheckEmptyInput(t *testing.T) {
	report, err := New(nil).Check(types.CheckResumeInput{})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Empty(t, report.KeywordJustifications)
	assert.Zero(t, report.HardIssueCount())
	assert.NotEmpty(t, report.Scoring.Verdict)
	assert.NotEmpty(t, report.Scoring.Summary)

	for _, factors := range [][]types.ScoreFactor{
		report.Scoring.ATSFactors,
		report.Scoring.RecruiterFactors,
	} {
		weightSum := 0
		for _, f := range factors {
			weightSum += f.Weight
			assert.GreaterOrEqual(t, f.Score, 0)
			assert.LessOrEqual(t, f.Score, 100)
		}
		assert.Equal(t, 100, weightSum)
	}
	assert.GreaterOrEqual(t, report.Scoring.ATSScore, 0)
	assert.LessOrEqual(t, report.Scoring.ATSScore, 100)
	assert.GreaterOrEqual(t, report.Scoring.RecruiterScore, 0)
	assert.LessOrEqual(t, report.Scoring.RecruiterScore, 100)
}

func TestCheckRemoveRiskyEscalatesRisk(t *testing.T) {
	input := types.CheckResumeInput{
		Markdown:       "## Summary\nUsed Excel for quarterly budget work.\n",
		JobDescription: "Analyst role requiring Excel.",
		OriginalResume: "Answered phones and scheduled appointments.",
		TargetKeywords: []string{"Excel"},
	}

	report, err := New(nil).Check(input)
	require.NoError(t, err)
	assert.Equal(t, 1, report.HardIssueCount())

	input.RemoveRiskyKeywords = true
	report, err = New(nil).Check(input)
	require.NoError(t, err)

	var found bool
	for _, issue := range report.Issues {
		if issue.Validator == validatorRemoveRisky {
			found = true
			assert.Equal(t, types.SeverityHard, issue.Severity)
		}
	}
	require.True(t, found, "expected a remove_risky_keywords issue")
	assert.Equal(t, 2, report.HardIssueCount())
	assert.Equal(t, types.RiskTierHigh, report.Scoring.Risk)
}

func TestCheckEmptyKeywordList(t *testing.T) {
	input := cleanInput()
	input.TargetKeywords = nil

	report, err := New(nil).Check(input)
	require.NoError(t, err)

	assert.Empty(t, report.KeywordJustifications)
	assert.Equal(t, 80, factorScore(t, report.Scoring.ATSFactors, factorSemanticMatch))
}

func TestCheckDeduplicatesKeywords(t *testing.T) {
	input := cleanInput()
	input.TargetKeywords = []string{"SQL", "sql", "  SQL ", "Python"}

	report, err := New(nil).Check(input)
	require.NoError(t, err)

	require.Len(t, report.KeywordJustifications, 2)
	assert.Equal(t, "SQL", report.KeywordJustifications[0].Keyword)
	assert.Equal(t, "Python", report.KeywordJustifications[1].Keyword)
}

func TestClassifyKeywords(t *testing.T) {
	out := New(nil).ClassifyKeywords([]string{"Excel", "SQL", "excel", ""})

	require.Len(t, out.Classifications, 2)
	assert.Equal(t, "Excel", out.Classifications[0].Keyword)
	assert.Equal(t, types.RiskHigh, out.Classifications[0].RiskLevel)
	assert.Equal(t, "spreadsheet reporting and analysis", out.Classifications[0].Alternative)
	assert.Equal(t, "SQL", out.Classifications[1].Keyword)
	assert.Equal(t, types.CategoryTool, out.Classifications[1].Category)
}

func BenchmarkCheck(b *testing.B) {
	engine := New(nil)
	input := cleanInput()

	for b.Loop() {
		if _, err := engine.Check(input); err != nil {
			b.Fatal(err)
		}
	}
}
