package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "short words dropped",
			text: "We do data analysis at scale",
			want: []string{"data", "analysis", "scale"},
		},
		{
			name: "punctuation splits tokens",
			text: "SQL, Python; and Go!",
			want: []string{"sql", "python", "and"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wordTokens(tt.text))
		})
	}
}

func TestShingleSet(t *testing.T) {
	tokens := []string{"one", "two", "three", "four"}

	t.Run("stream shorter than n is empty", func(t *testing.T) {
		assert.Empty(t, shingleSet(tokens, 7))
	})

	t.Run("contiguous shingles", func(t *testing.T) {
		got := shingleSet(tokens, 3)
		assert.Len(t, got, 2)
		assert.Contains(t, got, "one two three")
		assert.Contains(t, got, "two three four")
	})
}

func TestBulletLines(t *testing.T) {
	markdown := "## Experience\n- Increased revenue by 20%\n* Reduced churn\n• Launched dashboards\nnot a bullet\n-   \n"

	got := bulletLines(markdown)
	assert.Equal(t, []string{
		"Increased revenue by 20%",
		"Reduced churn",
		"Launched dashboards",
	}, got)
}

func TestFirstWord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "plain", line: "Managed a team", want: "managed"},
		{name: "trailing punctuation", line: "Shipped, then iterated", want: "shipped"},
		{name: "empty", line: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstWord(tt.line))
		})
	}
}

func TestSplitSections(t *testing.T) {
	markdown := "intro line\n## Summary\nAnalyst profile.\n## Work Experience\n- did things\n"

	sm := splitSections(markdown)

	assert.Equal(t, []string{"OTHER", "SUMMARY", "WORK EXPERIENCE"}, sm.names)
	assert.Equal(t, "intro line", sm.body(sectionOther))
	assert.Equal(t, "Analyst profile.", sm.body("SUMMARY"))
	assert.True(t, sm.has("EXPERIENCE"))
	assert.False(t, sm.has("EDUCATION"))
}
