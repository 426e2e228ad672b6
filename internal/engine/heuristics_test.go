package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoboticScore(t *testing.T) {
	rules := DefaultRuleset()

	t.Run("clean short document scores zero", func(t *testing.T) {
		bullets := []string{"Increased revenue", "Reduced churn", "Launched tooling"}

		assert.Zero(t, rules.roboticScore("short document", bullets, 0))
	})

	t.Run("buzzword saturation contributes its weight", func(t *testing.T) {
		got := rules.roboticScore("short", nil, buzzwordCap)

		assert.InDelta(t, roboticBuzzwordWeight, got, 1e-9)
	})

	t.Run("repeated openers contribute their weight", func(t *testing.T) {
		bullets := []string{"Managed alpha", "Managed beta", "Managed gamma"}

		got := rules.roboticScore("short", bullets, 0)

		assert.InDelta(t, roboticFirstWordWeight, got, 1e-9)
	})

	t.Run("score is clamped", func(t *testing.T) {
		long := make([]byte, longDocumentChars+docLengthDivisor*2)
		for i := range long {
			long[i] = 'a'
		}

		got := rules.roboticScore(string(long), nil, 100)

		assert.LessOrEqual(t, got, 1.0)
	})
}

func TestCountBuzzwords(t *testing.T) {
	rules := DefaultRuleset()

	assert.Zero(t, rules.countBuzzwords("plain factual writing"))
	assert.Equal(t, 2, rules.countBuzzwords("A results-driven self-starter."))
}

func TestToolFirstBullets(t *testing.T) {
	rules := DefaultRuleset()

	t.Run("flags bullets opening with a tool", func(t *testing.T) {
		bullets := []string{
			"Excel models for quarterly forecasts",
			"Increased accuracy of forecasts by 12%",
			"Tableau dashboards for leadership",
		}

		got := rules.toolFirstBullets(bullets)

		assert.Equal(t, []string{
			"Excel models for quarterly forecasts",
			"Tableau dashboards for leadership",
		}, got)
	})

	t.Run("tool name embedded in a longer word is ignored", func(t *testing.T) {
		assert.Empty(t, rules.toolFirstBullets([]string{"Excellent stakeholder updates"}))
	})

	t.Run("listed lines are capped", func(t *testing.T) {
		bullets := make([]string, maxToolFirstLines+5)
		for i := range bullets {
			bullets[i] = "Python scripts for ingest"
		}

		assert.Len(t, rules.toolFirstBullets(bullets), maxToolFirstLines)
	})
}

func TestOutcomeClarity(t *testing.T) {
	rules := DefaultRuleset()

	t.Run("no bullets uses the neutral default", func(t *testing.T) {
		assert.Equal(t, 0.6, rules.outcomeClarity(nil))
	})

	t.Run("fraction of bullets with outcomes", func(t *testing.T) {
		bullets := []string{
			"Increased revenue by 20%",
			"Worked on various projects",
		}

		assert.Equal(t, 0.5, rules.outcomeClarity(bullets))
	})
}

func TestSectionStructureScore(t *testing.T) {
	t.Run("all required sections", func(t *testing.T) {
		markdown := "## Summary\nx\n## Experience\nx\n## Skills\nx\n## Education\nx\n"

		assert.Equal(t, 1.0, sectionStructureScore(splitSections(markdown)))
	})

	t.Run("half the required sections", func(t *testing.T) {
		markdown := "## Summary\nx\n## Skills\nx\n"

		assert.Equal(t, 0.5, sectionStructureScore(splitSections(markdown)))
	})
}

func TestFormattingClarity(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     float64
	}{
		{
			name:     "clean markdown",
			markdown: "## Summary\nPlain text resume.\n",
			want:     0.9,
		},
		{
			name:     "pipe table",
			markdown: "| Skill | Years |\n| --- | --- |\n| SQL | 4 |\n",
			want:     0.6,
		},
		{
			name:     "embedded html table",
			markdown: "<table><tr><td>SQL</td></tr></table>",
			want:     0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formattingClarity(tt.markdown))
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     float64
	}{
		{
			name:     "no entry headers uses the default",
			markdown: "## Experience\nfree text\n",
			want:     0.75,
		},
		{
			name:     "well formed headers",
			markdown: "### Analyst | Acme | 2020 - 2023\n### Manager | Beta Corp | 2023 - Present\n",
			want:     1.0,
		},
		{
			name:     "mixed headers",
			markdown: "### Analyst | Acme | 2020\n### Manager | Beta Corp\n",
			want:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, consistencyScore(tt.markdown))
		})
	}
}

func TestSemanticSkillMatch(t *testing.T) {
	markdown := "## Skills\nSQL, Python, Tableau\n"

	t.Run("fraction of keywords present", func(t *testing.T) {
		got := semanticSkillMatch(markdown, []string{"SQL", "Python", "Rust", "Scala"})

		assert.Equal(t, 0.5, got)
	})

	t.Run("no keywords uses the neutral default", func(t *testing.T) {
		assert.Equal(t, 0.8, semanticSkillMatch(markdown, nil))
	})
}

func TestRoleAlignment(t *testing.T) {
	t.Run("summary covering the dominant vocabulary", func(t *testing.T) {
		jd := "python python python"
		sections := splitSections("## Summary\nPython developer\n")

		assert.Equal(t, 1.0, roleAlignment(jd, sections))
	})

	t.Run("empty job description", func(t *testing.T) {
		sections := splitSections("## Summary\nAnalyst\n")

		assert.Zero(t, roleAlignment("", sections))
	})

	t.Run("missing summary section", func(t *testing.T) {
		sections := splitSections("## Skills\nSQL\n")

		assert.Zero(t, roleAlignment("python data analysis", sections))
	})
}
