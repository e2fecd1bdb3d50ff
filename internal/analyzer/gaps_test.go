package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMatchingSkill(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		ref    string
		want   bool
	}{
		{name: "exact", skills: []string{"python"}, ref: "python", want: true},
		{name: "skill contains reference", skills: []string{"python programming"}, ref: "python", want: true},
		{name: "reference contains skill", skills: []string{"python"}, ref: "python programming", want: true},
		{name: "spaces removed variation", skills: []string{"machinelearning"}, ref: "machine learning", want: true},
		{name: "hyphen variation", skills: []string{"ci cd"}, ref: "ci-cd", want: true},
		{name: "no match", skills: []string{"watercolor"}, ref: "python", want: false},
		{name: "empty skills", skills: nil, ref: "python", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasMatchingSkill(tt.skills, tt.ref))
		})
	}
}

func TestMatchDomainSkills_Partition(t *testing.T) {
	ref := []string{"python", "sql", "docker"}
	matched, missing := matchDomainSkills([]string{"python"}, ref)

	assert.Equal(t, []string{"python"}, matched)
	assert.Equal(t, []string{"sql", "docker"}, missing)
}

func TestAnalyzeGaps_PriorityAndTruncation(t *testing.T) {
	a := newTestAnalyzer()

	// No skills at all: every reference skill is missing, so priority is
	// High and the list truncates to five.
	gaps := a.AnalyzeGaps(nil, []string{"Software Development"})
	require.Len(t, gaps, 1)

	gap := gaps[0]
	assert.Equal(t, "Software Development", gap.Domain)
	assert.Equal(t, "High", gap.Priority)
	assert.Len(t, gap.MissingSkills, 5)
}

func TestAnalyzeGaps_MissingRankedByImportance(t *testing.T) {
	a := newTestAnalyzer()

	gaps := a.AnalyzeGaps(nil, []string{"Software Development"})
	require.Len(t, gaps, 1)

	missing := gaps[0].MissingSkills
	for i := 1; i < len(missing); i++ {
		assert.GreaterOrEqual(t,
			a.kb.Importance(missing[i-1]), a.kb.Importance(missing[i]),
			"missing skills out of importance order at %d", i)
	}
}

func TestAnalyzeGaps_UnknownDomainSkipped(t *testing.T) {
	a := newTestAnalyzer()
	assert.Empty(t, a.AnalyzeGaps([]string{"python"}, []string{"Astrology"}))
}

func TestAnalyzeGaps_FullCoverageProducesNoGap(t *testing.T) {
	a := newTestAnalyzer()

	ref, ok := a.kb.DomainKeywords("Software Development")
	require.True(t, ok)

	gaps := a.AnalyzeGaps(ref, []string{"Software Development"})
	assert.Empty(t, gaps)
}
