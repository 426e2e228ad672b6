package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProofPredicates tests the category-specific evidence checks
func TestProofPredicates(t *testing.T) {
	tests := []struct {
		name     string
		kind     proofKind
		original string
		want     bool
	}{
		{
			name:     "excel with analysis vocabulary",
			kind:     proofExcel,
			original: "Built Excel dashboards and pivot tables for weekly reporting",
			want:     true,
		},
		{
			name:     "excel mentioned without evidence words",
			kind:     proofExcel,
			original: "Excel listed among other software",
			want:     false,
		},
		{
			name:     "no excel but spreadsheet work",
			kind:     proofExcel,
			original: "Maintained spreadsheet trackers for the finance team",
			want:     true,
		},
		{
			name:     "scale via large number",
			kind:     proofScale,
			original: "Processed 1,200,000 records monthly",
			want:     true,
		},
		{
			name:     "scale via scale word",
			kind:     proofScale,
			original: "Handled million-row exports",
			want:     true,
		},
		{
			name:     "no scale evidence",
			kind:     proofScale,
			original: "Filed paperwork and answered phones",
			want:     false,
		},
		{
			name:     "ownership verb plus inventory noun",
			kind:     proofOwnership,
			original: "Owned warehouse stock replenishment end to end",
			want:     true,
		},
		{
			name:     "ownership verb without inventory context",
			kind:     proofOwnership,
			original: "Led the onboarding program",
			want:     false,
		},
		{
			name:     "customer facing work",
			kind:     proofCX,
			original: "Resolved escalated customer complaints",
			want:     true,
		},
		{
			name:     "no customer contact",
			kind:     proofCX,
			original: "Wrote backend batch jobs",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proofHolds(tt.kind, tt.original))
		})
	}
}

// TestVerifyEvidence tests the combined direct-presence / predicate check
func TestVerifyEvidence(t *testing.T) {
	rules := DefaultRuleset()

	tests := []struct {
		name     string
		original string
		keyword  string
		want     bool
	}{
		{
			name:     "direct presence suffices",
			original: "Wrote Python scripts for ETL",
			keyword:  "Python",
			want:     true,
		},
		{
			name:     "predicate substitutes for presence",
			original: "Maintained spreadsheet trackers and monthly reports",
			keyword:  "Excel",
			want:     true,
		},
		{
			name:     "no presence and no predicates",
			original: "Retail associate handling a cash register",
			keyword:  "Kubernetes",
			want:     false,
		},
		{
			name:     "high-risk keyword without proof",
			original: "Greeted customers at the door",
			keyword:  "large data sets",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := rules.classifyKeyword(tt.keyword)
			assert.Equal(t, tt.want, verifyEvidence(tt.original, tt.keyword, profile))
		})
	}
}
