package analyzer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_SubstringScan(t *testing.T) {
	a := newTestAnalyzer()

	skills, err := a.ExtractSkills("Built services in Python and deployed with Docker.")
	require.NoError(t, err)

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
}

func TestExtractSkills_BigramScan(t *testing.T) {
	a := newTestAnalyzer()

	skills, err := a.ExtractSkills("experienced in machine learning and data analysis")
	require.NoError(t, err)

	assert.Contains(t, skills, "machine learning")
	assert.Contains(t, skills, "data analysis")
}

func TestExtractSkills_SortedAndDeduplicated(t *testing.T) {
	a := newTestAnalyzer()

	skills, err := a.ExtractSkills("python python java python java")
	require.NoError(t, err)

	assert.True(t, sort.StringsAreSorted(skills))
	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
		assert.Equal(t, 1, seen[s], "duplicate skill %q", s)
	}
}

func TestSkillsSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "bounded by experience header",
			text:     "summary\nskills: python, sql\nexperience\nacme corp",
			wantBody: "skills: python, sql\n",
			wantOK:   true,
		},
		{
			name:     "runs to end of text",
			text:     "summary\ntechnical skills: go, rust",
			wantBody: "technical skills: go, rust",
			wantOK:   true,
		},
		{
			name:   "no header",
			text:   "worked at acme corp for three years",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := skillsSection(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestSkillsSection_EarliestHeaderWins(t *testing.T) {
	body, ok := skillsSection("tools: git\nskills: python\nexperience\nacme")
	require.True(t, ok)
	assert.Contains(t, body, "tools: git")
	assert.Contains(t, body, "skills: python")
	assert.NotContains(t, body, "acme")
}
