package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumecheck/internal/types"
)

// TestClassifyKeyword tests the category, risk and frequency rules
func TestClassifyKeyword(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name          string
		keyword       string
		category      types.KeywordCategory
		risk          types.RiskLevel
		allowed       int
		requiresProof bool
		alternative   string
	}{
		{
			name:          "high-risk tool",
			keyword:       "Excel",
			category:      types.CategoryTool,
			risk:          types.RiskHigh,
			allowed:       2,
			requiresProof: true,
			alternative:   "spreadsheet reporting and analysis",
		},
		{
			name:          "high-risk functional",
			keyword:       "large data sets",
			category:      types.CategoryFunctional,
			risk:          types.RiskHigh,
			allowed:       1,
			requiresProof: true,
			alternative:   "high-volume data processing",
		},
		{
			name:          "plain tool",
			keyword:       "SQL",
			category:      types.CategoryTool,
			risk:          types.RiskLow,
			allowed:       2,
			requiresProof: true,
		},
		{
			name:          "outcome hint",
			keyword:       "process improvement",
			category:      types.CategoryOutcome,
			risk:          types.RiskMedium,
			allowed:       1,
			requiresProof: true,
		},
		{
			name:          "functional hint",
			keyword:       "stakeholder management",
			category:      types.CategoryFunctional,
			risk:          types.RiskMedium,
			allowed:       1,
			requiresProof: true,
		},
		{
			name:          "default classification",
			keyword:       "communication",
			category:      types.CategoryFunctional,
			risk:          types.RiskLow,
			allowed:       1,
			requiresProof: true,
		},
		{
			name:     "blank keyword",
			keyword:  "   ",
			category: types.CategoryUnknown,
			risk:     types.RiskLow,
			allowed:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := rules.classifyKeyword(tt.keyword)

			assert.Equal(t, tt.category, profile.Category)
			assert.Equal(t, tt.risk, profile.Risk)
			assert.Equal(t, tt.allowed, profile.AllowedFrequency)
			assert.Equal(t, tt.requiresProof, profile.RequiresProof)
			assert.Equal(t, tt.alternative, profile.Alternative)
		})
	}
}

func TestRulesetCopyOnWrite(t *testing.T) {
	base := DefaultRuleset()

	modified := base.WithTools("Figma").WithBuzzwords("paradigm shift").WithMirroringThreshold(0.5)

	assert.NotContains(t, base.tools, "figma")
	assert.Contains(t, modified.tools, "figma")
	assert.NotContains(t, base.buzzwords, "paradigm shift")
	assert.Contains(t, modified.buzzwords, "paradigm shift")
	assert.Equal(t, DefaultMirroringThreshold, base.mirroringThreshold)
	assert.Equal(t, 0.5, modified.mirroringThreshold)

	t.Run("out of range threshold ignored", func(t *testing.T) {
		assert.Same(t, base, base.WithMirroringThreshold(1.5))
	})
}
