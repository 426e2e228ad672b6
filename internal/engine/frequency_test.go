package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumecheck/internal/types"
)

// TestCheckFrequency tests global and per-section repetition limits
func TestCheckFrequency(t *testing.T) {
	rules := DefaultRuleset()

	t.Run("within limits", func(t *testing.T) {
		markdown := "## Summary\nAnalyst using SQL.\n## Skills\nSQL, Python\n"
		sections := splitSections(markdown)

		count, issues := checkFrequency(markdown, sections, "SQL", rules.classifyKeyword("SQL"))

		assert.Equal(t, 2, count)
		assert.Empty(t, issues)
	})

	t.Run("global overuse", func(t *testing.T) {
		markdown := "## Summary\nSQL work.\n## Skills\nSQL\n## Projects\nSQL pipelines\n"
		sections := splitSections(markdown)

		count, issues := checkFrequency(markdown, sections, "SQL", rules.classifyKeyword("SQL"))

		assert.Equal(t, 3, count)
		assert.Len(t, issues, 1)
		assert.Equal(t, types.SeverityHard, issues[0].Severity)
		assert.Equal(t, validatorKeywordFrequency, issues[0].Validator)
		assert.Equal(t, 3, issues[0].Details["count"])
		assert.Equal(t, 2, issues[0].Details["allowed"])
	})

	t.Run("section repetition", func(t *testing.T) {
		markdown := "## Summary\nExcel expert using Excel daily.\n"
		sections := splitSections(markdown)

		_, issues := checkFrequency(markdown, sections, "Excel", rules.classifyKeyword("Excel"))

		assert.Len(t, issues, 1)
		assert.Equal(t, "SUMMARY", issues[0].Details["section"])
		assert.Equal(t, 2, issues[0].Details["count"])
	})
}

// TestMirroringSimilarity tests the shingle-overlap measure
func TestMirroringSimilarity(t *testing.T) {
	jd := "analyzed customer retention data across multiple regions using statistical methods weekly"

	t.Run("identical text scores one", func(t *testing.T) {
		similarity, intersection := mirroringSimilarity(jd, jd)

		assert.Equal(t, 1.0, similarity)
		assert.Positive(t, intersection)
	})

	t.Run("unrelated text scores zero overlap", func(t *testing.T) {
		markdown := "built warehouse automation tooling with sensors robotics and embedded controllers daily"

		_, intersection := mirroringSimilarity(jd, markdown)

		assert.Zero(t, intersection)
	})

	t.Run("short inputs produce no shingles", func(t *testing.T) {
		similarity, intersection := mirroringSimilarity("too short", "also short")

		assert.Zero(t, similarity)
		assert.Zero(t, intersection)
	})
}

// TestCheckMirroring tests the threshold decision
func TestCheckMirroring(t *testing.T) {
	jd := "analyzed customer retention data across multiple regions using statistical methods weekly"

	t.Run("copied phrasing flagged", func(t *testing.T) {
		issues := checkMirroring(jd, jd, 0.75)

		assert.Len(t, issues, 1)
		assert.Equal(t, types.SeverityHard, issues[0].Severity)
		assert.Equal(t, validatorMirroring, issues[0].Validator)
	})

	t.Run("distinct phrasing passes", func(t *testing.T) {
		markdown := "built warehouse automation tooling with sensors robotics and embedded controllers daily"

		assert.Empty(t, checkMirroring(jd, markdown, 0.75))
	})

	t.Run("token cap bounds comparison cost", func(t *testing.T) {
		huge := strings.Repeat(jd+" ", 600)

		issues := checkMirroring(huge, huge, 0.75)

		assert.Len(t, issues, 1)
	})
}
